// Package rest holds the wire types and route patterns of the todo lists REST API.
// They are shared by the server, the client and the mock backend.
package rest

import "github.com/google/uuid"

// Route patterns, in net/http.ServeMux syntax.
const (
	RouteListLists  = "GET /api/v1/lists"
	RouteCreateList = "POST /api/v1/lists"
	RouteDeleteList = "DELETE /api/v1/lists/{id}"
	RouteListTasks  = "GET /api/v1/lists/{listId}/tasks"
	RouteCreateTask = "POST /api/v1/lists/{listId}/tasks"
	RouteUpdateTask = "PATCH /api/v1/tasks/{taskId}"
	RouteDeleteTask = "DELETE /api/v1/tasks/{taskId}"
)

// ErrorCode classifies an error response.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an error response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// List is the wire form of a list.
type List struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Removable bool      `json:"removable"`
}

// Task is the wire form of a task. Touched is a Unix time in milliseconds.
type Task struct {
	Id        uuid.UUID `json:"id"`
	ListId    uuid.UUID `json:"listId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Touched   int64     `json:"touched"`
}

// CreateListJSONRequestBody is the body of RouteCreateList.
type CreateListJSONRequestBody struct {
	Name string `json:"name"`
}

// CreateTaskJSONRequestBody is the body of RouteCreateTask.
type CreateTaskJSONRequestBody struct {
	Text string `json:"text"`
}

// UpdateTaskJSONRequestBody is the body of RouteUpdateTask.
type UpdateTaskJSONRequestBody struct {
	Completed *bool `json:"completed,omitempty"`
}

// NewErrorResp builds an ErrorResp.
func NewErrorResp(code ErrorCode, message string) ErrorResp {
	return ErrorResp{Error: Error{Code: code, Message: message}}
}
