package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"progresstracker/internal/adapter/http/dto"
	"progresstracker/internal/core/dates"
	"progresstracker/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput validates a create body against both the bound
// request and the raw JSON: a field that is present but did not bind
// (wrong JSON type) is a hard error, not a silently applied default.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{Title: title}

	if hasJSONField(raw, "description") && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Description != nil {
		input.Description = strings.TrimSpace(*req.Description)
	}

	if hasJSONField(raw, "type") && !isJSONNull(raw["type"]) {
		if req.Type == nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Type = domain.TaskType(strings.ToLower(*req.Type))
		if !input.Type.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if hasJSONField(raw, "status") && !isJSONNull(raw["status"]) {
		if req.Status == nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Status = domain.TaskStatus(strings.ToLower(*req.Status))
		if !input.Status.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if hasJSONField(raw, "priority") && !isJSONNull(raw["priority"]) {
		if req.Priority == nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Priority = domain.TaskPriority(strings.ToLower(*req.Priority))
		if !input.Priority.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	if req.StartDate != nil {
		day, ok := dates.ParseDay(*req.StartDate)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.StartDate = &day
	}
	if req.DueDate != nil {
		day, ok := dates.ParseDay(*req.DueDate)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &day
	}

	return input, nil
}

// BuildUpdateTaskInput turns a PATCH body into a partial update. Presence
// is read off the raw JSON so "due_date": null (clear the date) can be
// told apart from an omitted due_date (leave it alone).
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	input.DescriptionSet = hasJSONField(raw, "description")
	if input.DescriptionSet && !isJSONNull(raw["description"]) {
		if req.Description == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Description)
		input.Description = &value
	}

	if hasJSONField(raw, "type") {
		if req.Type == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskType(strings.ToLower(*req.Type))
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Type = &value
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskStatus(strings.ToLower(*req.Status))
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Status = &value
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskPriority(strings.ToLower(*req.Priority))
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Priority = &value
	}

	if hasJSONField(raw, "start_date") && !isJSONNull(raw["start_date"]) {
		if req.StartDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		day, ok := dates.ParseDay(*req.StartDate)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.StartDate = &day
	}

	input.DueDateSet = hasJSONField(raw, "due_date")
	if input.DueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		day, ok := dates.ParseDay(*req.DueDate)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &day
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	for _, field := range []string{"title", "description", "type", "status", "priority", "start_date", "due_date"} {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
