// Package client is the Go SDK for the task tracker REST API. It is
// the only place that talks HTTP on the client side; the sync engine
// sits on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mkaraca/task-tracker-api/internal/dto"
	"github.com/mkaraca/task-tracker-api/internal/query"
)

// StatusError is returned for any non-2xx response. Callers detect
// transport-level failure with errors.As.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient allows injecting the http.Client, used by tests.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ListUsers fetches the team roster.
func (c *Client) ListUsers(ctx context.Context) ([]dto.UserDTO, error) {
	var users []dto.UserDTO
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListTasks fetches the tasks matching the given filters. The
// canonical encoding keeps the request URL stable for equal filter
// state.
func (c *Client) ListTasks(ctx context.Context, f query.Filters) ([]dto.TaskDTO, error) {
	path := "/tasks"
	if qs := f.Encode(); qs != "" {
		path += "?" + qs
	}

	var tasks []dto.TaskDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task and returns the server-assigned id.
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (uint64, error) {
	var resp struct {
		ID uint64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &resp); err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	return resp.ID, nil
}

// PatchTask sends a partial update for a single task.
func (c *Client) PatchTask(ctx context.Context, id uint64, patch dto.TaskPatch) error {
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+strconv.FormatUint(id, 10), patch, nil); err != nil {
		return fmt.Errorf("patch task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+strconv.FormatUint(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
