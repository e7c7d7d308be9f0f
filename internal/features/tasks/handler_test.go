package tasks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/features/auth"
)

func setupRouter(svc *Service, users map[string]*auth.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	requireAuth := func(c *gin.Context) {
		user, ok := users[c.GetHeader("Authorization")]
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		auth.SetCurrentUser(c, user)
		c.Next()
	}
	RegisterRoutes(r, svc, requireAuth)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, user string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTaskEndpoints(t *testing.T) {
	users := map[string]*auth.User{
		"alice": {ID: primitive.NewObjectID(), Username: "alice"},
		"bob":   {ID: primitive.NewObjectID(), Username: "bob"},
	}
	r := setupRouter(NewService(&memStore{}), users)

	w := doJSON(r, "POST", "/tasks", gin.H{"text": "Renew passport", "deadline": "2026-12-31T23:59:59Z"}, "alice")
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Renew passport", created.Data.Text)
	require.NotNil(t, created.Data.Deadline)
	path := "/tasks/" + created.Data.ID.Hex()

	w = doJSON(r, "GET", "/tasks?limit=10", nil, "alice")
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data struct {
			Tasks      []Task `json:"tasks"`
			Pagination struct {
				Total int64 `json:"total"`
				Limit int   `json:"limit"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data.Tasks, 1)
	require.Equal(t, int64(1), listed.Data.Pagination.Total)
	require.Equal(t, 10, listed.Data.Pagination.Limit)

	w = doJSON(r, "GET", "/tasks", nil, "bob")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"tasks":[]`)

	w = doJSON(r, "PATCH", path, gin.H{"text": "stolen"}, "bob")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "PATCH", path, gin.H{"text": "Renew passport and ID"}, "alice")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Renew passport and ID")

	w = doJSON(r, "PATCH", path, gin.H{}, "alice")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "DELETE", path, nil, "bob")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, "DELETE", path, nil, "alice")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/tasks", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTaskRequiresText(t *testing.T) {
	users := map[string]*auth.User{"alice": {ID: primitive.NewObjectID(), Username: "alice"}}
	r := setupRouter(NewService(&memStore{}), users)

	w := doJSON(r, "POST", "/tasks", gin.H{"deadline": "2026-12-31T23:59:59Z"}, "alice")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "INVALID_JSON")
}

func TestListTasksHugePage(t *testing.T) {
	users := map[string]*auth.User{"alice": {ID: primitive.NewObjectID(), Username: "alice"}}
	r := setupRouter(NewService(&memStore{}), users)

	w := doJSON(r, "POST", "/tasks", gin.H{"text": "Renew passport"}, "alice")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "GET", "/tasks?page=9223372036854775807&limit=100", nil, "alice")
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data struct {
			Tasks      []Task `json:"tasks"`
			Pagination struct {
				Page    int   `json:"page"`
				Total   int64 `json:"total"`
				HasNext bool  `json:"hasNext"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Empty(t, listed.Data.Tasks)
	require.Equal(t, int64(1), listed.Data.Pagination.Total)
	require.False(t, listed.Data.Pagination.HasNext)
	require.Positive(t, listed.Data.Pagination.Page)
}
