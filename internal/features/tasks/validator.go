package tasks

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasklists/internal/pkg/validator"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

const MaxTextLength = 500

func normalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.New(apperrors.ErrValidation, "Task text is required")
	}
	if !validator.WithinLength(text, 1, MaxTextLength) {
		return "", apperrors.New(apperrors.ErrValidation, "Task text cannot exceed 500 characters")
	}
	return text, nil
}

// ValidateCreateTask trims the text in place
func ValidateCreateTask(req *CreateTaskRequest) error {
	text, err := normalizeText(req.Text)
	if err != nil {
		return err
	}
	req.Text = text
	return nil
}

// ValidateUpdateTask trims the text in place and rejects empty updates
func ValidateUpdateTask(req *UpdateTaskRequest) error {
	if req.Text == nil && req.Deadline == nil {
		return apperrors.New(apperrors.ErrValidation, "No fields to update")
	}
	if req.Text != nil {
		text, err := normalizeText(*req.Text)
		if err != nil {
			return err
		}
		req.Text = &text
	}
	return nil
}

func parseTaskID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperrors.New(apperrors.ErrValidation, "Invalid task ID")
	}
	return oid, nil
}
