package httpapi

import (
	"errors"
	"strings"
	"testing"

	"taskboard/internal/common"
	"taskboard/internal/server/models"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{"valid", "alice", "secret1", ""},
		{"username too short", "al", "secret1", "Username must be at least 3 characters"},
		{"username too long", strings.Repeat("a", 51), "secret1", "Username must be at most 50 characters"},
		{"password too short", "alice", "12345", "Password must be at least 6 characters"},
		{"both invalid", "al", "123", "Username must be at least 3 characters, Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCredentials(&credentialsRequest{Username: tt.username, Password: tt.password})
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantMsg)
			}
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("error must match common.ErrorValidation, got %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Fatalf("message mismatch:\n got %q\nwant %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateTaskCreate(t *testing.T) {
	tests := []struct {
		name    string
		req     taskCreateRequest
		wantMsg string
	}{
		{"valid minimal", taskCreateRequest{Title: "Buy milk"}, ""},
		{"valid full", taskCreateRequest{Title: "Buy milk", Description: "2l", Status: models.StatusCompleted}, ""},
		{"missing title", taskCreateRequest{}, "Title is required"},
		{"title too long", taskCreateRequest{Title: strings.Repeat("t", 101)}, "Title must be at most 100 characters"},
		{"description too long", taskCreateRequest{Title: "x", Description: strings.Repeat("d", 501)}, "Description must be at most 500 characters"},
		{"bad status", taskCreateRequest{Title: "x", Status: "Done"}, "Status must be one of: To Do, In Progress, Completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTaskCreate(&tt.req)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantMsg {
				t.Fatalf("message mismatch:\n got %v\nwant %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateTaskUpdate_AllFieldsOptional(t *testing.T) {
	if err := validateTaskUpdate(&taskUpdateRequest{}); err != nil {
		t.Fatalf("empty update must validate, got %v", err)
	}
}

func TestValidateTaskUpdate_SuppliedFieldsChecked(t *testing.T) {
	empty := ""
	if err := validateTaskUpdate(&taskUpdateRequest{Title: &empty}); err == nil {
		t.Fatalf("empty title must fail when supplied")
	}

	bad := models.TaskStatus("Later")
	if err := validateTaskUpdate(&taskUpdateRequest{Status: &bad}); err == nil {
		t.Fatalf("unknown status must fail when supplied")
	}

	status := models.StatusInProgress
	if err := validateTaskUpdate(&taskUpdateRequest{Status: &status}); err != nil {
		t.Fatalf("valid status rejected: %v", err)
	}
}
