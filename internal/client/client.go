// Package client is the Go client for the TaskFlow REST API. The dashboard
// and the CLI talk to the server exclusively through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// Client calls the TaskFlow API over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer credential attached to authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer credential, e.g. after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register creates an account and returns the user info plus a token.
func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResponse, error) {
	var resp ports.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and returns the user info plus a fresh token.
func (c *Client) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponse, error) {
	var resp ports.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListMyTasks fetches every task owned by the caller.
func (c *Client) ListMyTasks(ctx context.Context) ([]entities.Task, error) {
	var tasks []entities.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/me", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask stores a new task and returns the full stored record.
func (c *Client) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks/createTask", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the updated record.
func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, patch entities.TaskPatch) (*entities.Task, error) {
	var task entities.Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/updateTask/"+id.String(), patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask permanently removes a task.
func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/deleteTask/"+id.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// apiError maps an error response onto the domain error taxonomy so callers
// can branch on sentinels instead of status codes.
func (c *Client) apiError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return entities.ErrUnauthenticated
	case http.StatusNotFound:
		return entities.ErrTaskNotFound
	case http.StatusBadRequest:
		if envelope.Message != "" {
			return fmt.Errorf("%s", envelope.Message)
		}
		return entities.ErrMissingFields
	default:
		if envelope.Message != "" {
			return fmt.Errorf("server error: %s", envelope.Message)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}
