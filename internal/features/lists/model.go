package lists

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is an entry embedded in a List. It has no life outside its list.
// @Description Task entry nested inside a list
type Task struct {
	ID       primitive.ObjectID `bson:"_id" json:"id" example:"507f1f77bcf86cd799439012"`
	Title    string             `bson:"title" json:"title" example:"milk"`
	Complete bool               `bson:"complete" json:"complete" example:"false"`
}

// List is a titled, ordered set of tasks shared between its collaborators.
// The owner is always one of the collaborators.
// @Description Shared task list
type List struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Title         string               `bson:"title" json:"title" example:"Groceries"`
	Owner         primitive.ObjectID   `bson:"owner" json:"owner" example:"507f1f77bcf86cd799439013"`
	Collaborators []primitive.ObjectID `bson:"collaborators" json:"collaborators"`
	Tasks         []Task               `bson:"tasks" json:"tasks"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasCollaborator reports whether userID may see and edit the list
func (l *List) HasCollaborator(userID primitive.ObjectID) bool {
	for _, id := range l.Collaborators {
		if id == userID {
			return true
		}
	}
	return false
}

// TitleRequest carries a list title, for creating or renaming a list
type TitleRequest struct {
	Title string `json:"title" binding:"required" example:"Groceries"`
}

// AddTaskRequest represents a new task entry
type AddTaskRequest struct {
	Title string `json:"title" binding:"required" example:"milk"`
}

// RemoveTaskRequest addresses a task entry to delete
type RemoveTaskRequest struct {
	TaskID string `json:"taskId" binding:"required" example:"507f1f77bcf86cd799439012"`
}

// SetCompletionRequest sets the completion flag of a task entry
type SetCompletionRequest struct {
	TaskID   string `json:"taskId" binding:"required" example:"507f1f77bcf86cd799439012"`
	Complete *bool  `json:"complete" binding:"required" example:"true"`
}

// RenameTaskRequest changes the title of a task entry
type RenameTaskRequest struct {
	TaskID string `json:"taskId" binding:"required" example:"507f1f77bcf86cd799439012"`
	Title  string `json:"title" binding:"required" example:"oat milk"`
}

// AddCollaboratorRequest shares a list with another user
type AddCollaboratorRequest struct {
	Username string `json:"username" binding:"required" example:"bob"`
}
