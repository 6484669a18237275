package httpapi

import (
	"strings"
	"unicode/utf8"

	"taskboard/internal/common"
	"taskboard/internal/server/models"
)

// ValidationError lists every constraint a request payload failed.
// errors.Is matches it against common.ErrorValidation.
type ValidationError struct {
	issues []string
}

func newValidationError(issues ...string) *ValidationError {
	return &ValidationError{issues: issues}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.issues, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type taskCreateRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
}

type taskUpdateRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *models.TaskStatus `json:"status"`
}

// validateCredentials checks the registration/login payload: username 3-50
// characters, password at least 6.
func validateCredentials(req *credentialsRequest) error {
	var issues []string

	if n := utf8.RuneCountInString(req.Username); n < 3 {
		issues = append(issues, "Username must be at least 3 characters")
	} else if n > 50 {
		issues = append(issues, "Username must be at most 50 characters")
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		issues = append(issues, "Password must be at least 6 characters")
	}

	if len(issues) > 0 {
		return &ValidationError{issues: issues}
	}
	return nil
}

func validateTitle(title string) (string, bool) {
	if title == "" {
		return "Title is required", false
	}
	if utf8.RuneCountInString(title) > 100 {
		return "Title must be at most 100 characters", false
	}
	return "", true
}

func validateDescription(description string) (string, bool) {
	if utf8.RuneCountInString(description) > 500 {
		return "Description must be at most 500 characters", false
	}
	return "", true
}

func validateStatus(status models.TaskStatus) (string, bool) {
	if !status.Valid() {
		return "Status must be one of: To Do, In Progress, Completed", false
	}
	return "", true
}

// validateTaskCreate checks a task-creation payload. An absent status is
// allowed; the service defaults it.
func validateTaskCreate(req *taskCreateRequest) error {
	var issues []string

	if msg, ok := validateTitle(req.Title); !ok {
		issues = append(issues, msg)
	}
	if msg, ok := validateDescription(req.Description); !ok {
		issues = append(issues, msg)
	}
	if req.Status != "" {
		if msg, ok := validateStatus(req.Status); !ok {
			issues = append(issues, msg)
		}
	}

	if len(issues) > 0 {
		return &ValidationError{issues: issues}
	}
	return nil
}

// validateTaskUpdate checks a partial-update payload: every field is
// optional, supplied fields obey the creation bounds.
func validateTaskUpdate(req *taskUpdateRequest) error {
	var issues []string

	if req.Title != nil {
		if msg, ok := validateTitle(*req.Title); !ok {
			issues = append(issues, msg)
		}
	}
	if req.Description != nil {
		if msg, ok := validateDescription(*req.Description); !ok {
			issues = append(issues, msg)
		}
	}
	if req.Status != nil {
		if msg, ok := validateStatus(*req.Status); !ok {
			issues = append(issues, msg)
		}
	}

	if len(issues) > 0 {
		return &ValidationError{issues: issues}
	}
	return nil
}
