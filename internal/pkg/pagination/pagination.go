package pagination

import (
	"errors"
	"math"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
	MaxPage      = math.MaxInt32
)

// Pagination is the page metadata returned next to a page of results
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// Request is a clamped page/limit pair parsed from query parameters
type Request struct {
	Page  int
	Limit int
}

// FromQuery parses page and limit. Missing or bad values fall back to page 1
// and DefaultLimit; page is capped at MaxPage and limit at MaxLimit.
func FromQuery(pageStr, limitStr string) Request {
	page, err := strconv.Atoi(pageStr)
	if errors.Is(err, strconv.ErrRange) && pageStr[0] != '-' {
		page = MaxPage
	} else if err != nil || page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{Page: page, Limit: limit}
}

// Offset is the number of items to skip for this page
func (r Request) Offset() int64 {
	if r.Page < 1 {
		return 0
	}
	return int64(r.Page-1) * int64(r.Limit)
}

// New builds the metadata for a page of a result set of size total
func New(req Request, total int64) *Pagination {
	pages := int(math.Ceil(float64(total) / float64(req.Limit)))
	if pages < 1 {
		pages = 1
	}

	return &Pagination{
		Page:    req.Page,
		Limit:   req.Limit,
		Total:   total,
		Pages:   pages,
		HasNext: req.Page < pages,
		HasPrev: req.Page > 1,
	}
}
