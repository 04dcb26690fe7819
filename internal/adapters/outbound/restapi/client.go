// Package restapi is the typed client of the todo lists REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/cleitonmarx/todolists/internal/common"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/google/uuid"
)

// StatusErr is returned for every non-2xx response.
type StatusErr struct {
	StatusCode int
	Message    string
}

func (e *StatusErr) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is a *StatusErr carrying the given status code.
func IsStatus(err error, statusCode int) bool {
	var sErr *StatusErr
	return errors.As(err, &sErr) && sErr.StatusCode == statusCode
}

// Client calls the REST API rooted at baseURL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new client. A nil httpClient falls back to the
// instrumented retrying client.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = telemetry.NewHttpClient(nil)
	}
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListLists returns every list known to the backend.
func (c Client) ListLists(ctx context.Context) ([]domain.List, error) {
	var out []rest.List
	if err := c.do(ctx, http.MethodGet, "/api/v1/lists", nil, &out); err != nil {
		return nil, err
	}

	lists := make([]domain.List, 0, len(out))
	for _, l := range out {
		lists = append(lists, toDomainList(l))
	}
	return lists, nil
}

// CreateList creates a list named name.
func (c Client) CreateList(ctx context.Context, name string) (domain.List, error) {
	var out rest.List
	if err := c.do(ctx, http.MethodPost, "/api/v1/lists", rest.CreateListJSONRequestBody{Name: name}, &out); err != nil {
		return domain.List{}, err
	}
	return toDomainList(out), nil
}

// DeleteList removes a list and its tasks.
func (c Client) DeleteList(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/lists/"+id.String(), nil, nil)
}

// ListTasks returns the tasks of a list.
func (c Client) ListTasks(ctx context.Context, listID uuid.UUID) ([]domain.Task, error) {
	var out []rest.Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/lists/"+listID.String()+"/tasks", nil, &out); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(out))
	for _, t := range out {
		tasks = append(tasks, toDomainTask(t))
	}
	return tasks, nil
}

// CreateTask adds a task to a list.
func (c Client) CreateTask(ctx context.Context, listID uuid.UUID, text string) (domain.Task, error) {
	var out rest.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/lists/"+listID.String()+"/tasks", rest.CreateTaskJSONRequestBody{Text: text}, &out); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(out), nil
}

// UpdateTask sets the completed flag of a task.
func (c Client) UpdateTask(ctx context.Context, id uuid.UUID, completed bool) (domain.Task, error) {
	var out rest.Task
	body := rest.UpdateTaskJSONRequestBody{Completed: common.Ptr(completed)}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/tasks/"+id.String(), body, &out); err != nil {
		return domain.Task{}, err
	}
	return toDomainTask(out), nil
}

// DeleteTask removes a task.
func (c Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+id.String(), nil, nil)
}

func (c Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusErr(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func newStatusErr(statusCode int, body []byte) *StatusErr {
	var errResp rest.ErrorResp
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return &StatusErr{StatusCode: statusCode, Message: errResp.Error.Message}
	}
	return &StatusErr{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}

func toDomainList(l rest.List) domain.List {
	return domain.List{
		ID:        l.Id,
		Name:      l.Name,
		Removable: l.Removable,
	}
}

func toDomainTask(t rest.Task) domain.Task {
	return domain.Task{
		ID:        t.Id,
		ListID:    t.ListId,
		Text:      t.Text,
		Completed: t.Completed,
		Touched:   time.UnixMilli(t.Touched).UTC(),
	}
}
