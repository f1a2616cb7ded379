package client

import (
	"context"
	"fmt"
	"net/http"
)

// Task operations. Tasks are created and status-toggled, never deleted:
// the API exposes no delete route.

// ListTasks retrieves all tasks for the current user.
func (c *Client) ListTasks(ctx context.Context, opts ...RequestOption) ([]Task, error) {
	var tr tasksResponse
	if err := c.doJSON(ctx, http.MethodGet, "/tasks", nil, http.StatusOK, "list tasks", &tr, opts...); err != nil {
		return nil, err
	}
	return tr.Tasks, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest, opts ...RequestOption) (*Task, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("task name is required")
	}
	if req.Date == "" {
		return nil, fmt.Errorf("task date is required")
	}
	var t Task
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", req, http.StatusCreated, "create task", &t, opts...); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTaskStatus sets a task's done flag. This is the network half of the
// optimistic toggle; the speculative cache edit lives in the store layer.
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, isDone bool, opts ...RequestOption) (*Task, error) {
	if err := ValidateEntityID(id, "taskId"); err != nil {
		return nil, err
	}
	body := map[string]bool{"isDone": isDone}
	var t Task
	if err := c.doJSON(ctx, http.MethodPatch, "/tasks/status/"+id, body, http.StatusOK, "update task status", &t, opts...); err != nil {
		return nil, err
	}
	return &t, nil
}
