package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a personal task that belongs to a single user and no list
// @Description Standalone task owned by one user
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Text      string             `bson:"text" json:"text" example:"Renew passport"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner" example:"507f1f77bcf86cd799439013"`
	Deadline  *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty" example:"2026-12-31T23:59:59Z"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt" example:"2026-01-01T00:00:00Z"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt" example:"2026-01-01T00:00:00Z"`
}

// CreateTaskRequest represents task creation data
// @Description Data required to create a task
type CreateTaskRequest struct {
	Text     string     `json:"text" binding:"required" example:"Renew passport"`
	Deadline *time.Time `json:"deadline" example:"2026-12-31T23:59:59Z"`
}

// UpdateTaskRequest represents a partial task update
// @Description Fields to change on a task; omitted fields are kept
type UpdateTaskRequest struct {
	Text     *string    `json:"text" example:"Renew passport and ID"`
	Deadline *time.Time `json:"deadline" example:"2027-01-15T12:00:00Z"`
}

// Page is one page of a user's tasks
type Page struct {
	Tasks []Task
	Total int64
}
