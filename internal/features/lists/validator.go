package lists

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/pkg/validator"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

const (
	MaxListTitleLength = 140
	MaxTaskTitleLength = 500
)

// NormalizeListTitle trims the title and checks its length
func NormalizeListTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperrors.New(apperrors.ErrValidation, "Title is required")
	}
	if !validator.WithinLength(title, 1, MaxListTitleLength) {
		return "", apperrors.New(apperrors.ErrValidation, "Title cannot exceed 140 characters")
	}
	return title, nil
}

// NormalizeTaskTitle trims a task title and checks its length
func NormalizeTaskTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperrors.New(apperrors.ErrValidation, "Task cannot be empty")
	}
	if !validator.WithinLength(title, 1, MaxTaskTitleLength) {
		return "", apperrors.New(apperrors.ErrValidation, "Task cannot exceed 500 characters")
	}
	return title, nil
}

// ParseID turns a hex id from the request into an ObjectID. what names the
// entity in the error message, e.g. "list".
func ParseID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperrors.New(apperrors.ErrValidation, "Invalid "+what+" ID")
	}
	return oid, nil
}
