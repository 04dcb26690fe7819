package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedTime   = time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC)
	primaryList = domain.List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "primary"}
	otherList   = domain.List{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "other", Removable: true}
	primaryTask = domain.Task{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000a1"), ListID: primaryList.ID, Text: "foo", Touched: fixedTime}
	otherTask   = domain.Task{ID: uuid.MustParse("00000000-0000-0000-0000-0000000000b1"), ListID: otherList.ID, Text: "bar", Completed: true, Touched: fixedTime}
)

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time { return fixedTime }

var errDatabase = errors.New("database error")

// failingUow is a domain.UnitOfWork whose transactions and reads always fail.
type failingUow struct {
	*memory.Store
}

func (f failingUow) List() domain.ListRepository {
	return failingLists{f.Store.List()}
}

func (f failingUow) Task() domain.TaskRepository {
	return failingTasks{f.Store.Task()}
}

func (failingUow) Execute(context.Context, func(uow domain.UnitOfWork) error) error {
	return errDatabase
}

type failingLists struct {
	domain.ListRepository
}

func (failingLists) ListLists(context.Context) ([]domain.List, error) {
	return nil, errDatabase
}

type failingTasks struct {
	domain.TaskRepository
}

func (failingTasks) ListTasks(context.Context, ...domain.ListTaskOptions) ([]domain.Task, error) {
	return nil, errDatabase
}

func newTestServer(t *testing.T, uow domain.UnitOfWork) TodoListsServer {
	t.Helper()
	return TodoListsServer{
		Logger:            log.New(io.Discard, "", 0),
		ListListsUseCase:  usecases.NewListListsImpl(uow),
		CreateListUseCase: usecases.NewCreateListImpl(uow),
		DeleteListUseCase: usecases.NewDeleteListImpl(uow),
		ListTasksUseCase:  usecases.NewListTasksImpl(uow),
		CreateTaskUseCase: usecases.NewCreateTaskImpl(uow, fixedTimeProvider{}),
		UpdateTaskUseCase: usecases.NewUpdateTaskImpl(uow, fixedTimeProvider{}),
		DeleteTaskUseCase: usecases.NewDeleteTaskImpl(uow),
	}
}

func newSeededStore() *memory.Store {
	store := memory.NewStore()
	store.Seed(domain.ApplicationState{
		Lists: []domain.List{primaryList, otherList},
		Tasks: []domain.Task{primaryTask, otherTask},
	})
	return store
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

func serve(server TodoListsServer, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) rest.Error {
	t.Helper()
	var resp rest.ErrorResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestTodoListsServer_ListLists(t *testing.T) {
	tests := map[string]struct {
		uow            func() domain.UnitOfWork
		expectedStatus int
		expectedBody   []rest.List
		expectedError  *rest.Error
	}{
		"success": {
			uow:            func() domain.UnitOfWork { return newSeededStore() },
			expectedStatus: http.StatusOK,
			expectedBody:   []rest.List{toList(primaryList), toList(otherList)},
		},
		"empty-store-returns-empty-array": {
			uow:            func() domain.UnitOfWork { return memory.NewStore() },
			expectedStatus: http.StatusOK,
			expectedBody:   []rest.List{},
		},
		"internal-server-error": {
			uow:            func() domain.UnitOfWork { return failingUow{memory.NewStore()} },
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &rest.Error{Code: rest.INTERNALERROR, Message: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := serve(newTestServer(t, tt.uow()), http.MethodGet, "/api/v1/lists", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp []rest.List
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w))
			}
		})
	}
}

func TestTodoListsServer_CreateList(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		expectedStatus int
		expectedName   string
		expectedError  *rest.Error
	}{
		"success": {
			requestBody:    serializeJSON(t, rest.CreateListJSONRequestBody{Name: "groceries"}),
			expectedStatus: http.StatusOK,
			expectedName:   "groceries",
		},
		"duplicate-name-is-accepted": {
			requestBody:    serializeJSON(t, rest.CreateListJSONRequestBody{Name: "primary"}),
			expectedStatus: http.StatusOK,
			expectedName:   "primary",
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"name":`),
			expectedStatus: http.StatusBadRequest,
			expectedError:  &rest.Error{Code: rest.BADREQUEST, Message: "invalid request body: unexpected EOF"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newSeededStore()
			w := serve(newTestServer(t, store), http.MethodPost, "/api/v1/lists", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w))
				return
			}

			var resp rest.List
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedName, resp.Name)
			assert.True(t, resp.Removable)
			assert.NotEqual(t, uuid.Nil, resp.Id)

			lists, _ := store.Snapshot()
			assert.Len(t, lists, 3)
		})
	}
}

func TestTodoListsServer_DeleteList(t *testing.T) {
	tests := map[string]struct {
		target         string
		expectedStatus int
		expectedLists  int
		expectedTasks  int
		expectedError  *rest.Error
	}{
		"success-cascades-tasks": {
			target:         "/api/v1/lists/" + otherList.ID.String(),
			expectedStatus: http.StatusNoContent,
			expectedLists:  1,
			expectedTasks:  1,
		},
		"unknown-id-is-no-op": {
			target:         "/api/v1/lists/" + uuid.NewString(),
			expectedStatus: http.StatusNoContent,
			expectedLists:  2,
			expectedTasks:  2,
		},
		"non-removable-list": {
			target:         "/api/v1/lists/" + primaryList.ID.String(),
			expectedStatus: http.StatusBadRequest,
			expectedLists:  2,
			expectedTasks:  2,
			expectedError: &rest.Error{
				Code:    rest.BADREQUEST,
				Message: "list primary cannot be removed",
			},
		},
		"invalid-id": {
			target:         "/api/v1/lists/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedLists:  2,
			expectedTasks:  2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newSeededStore()
			w := serve(newTestServer(t, store), http.MethodDelete, tt.target, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w))
			}

			lists, tasks := store.Snapshot()
			assert.Len(t, lists, tt.expectedLists)
			assert.Len(t, tasks, tt.expectedTasks)
		})
	}
}

func TestTodoListsServer_ListTasks(t *testing.T) {
	tests := map[string]struct {
		uow            func() domain.UnitOfWork
		target         string
		expectedStatus int
		expectedBody   []rest.Task
		expectedError  *rest.Error
	}{
		"success": {
			uow:            func() domain.UnitOfWork { return newSeededStore() },
			target:         "/api/v1/lists/" + otherList.ID.String() + "/tasks",
			expectedStatus: http.StatusOK,
			expectedBody:   []rest.Task{toTask(otherTask)},
		},
		"unknown-list-returns-empty-array": {
			uow:            func() domain.UnitOfWork { return newSeededStore() },
			target:         "/api/v1/lists/" + uuid.NewString() + "/tasks",
			expectedStatus: http.StatusOK,
			expectedBody:   []rest.Task{},
		},
		"invalid-list-id": {
			uow:            func() domain.UnitOfWork { return newSeededStore() },
			target:         "/api/v1/lists/42/tasks",
			expectedStatus: http.StatusBadRequest,
		},
		"internal-server-error": {
			uow:            func() domain.UnitOfWork { return failingUow{newSeededStore()} },
			target:         "/api/v1/lists/" + otherList.ID.String() + "/tasks",
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &rest.Error{Code: rest.INTERNALERROR, Message: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := serve(newTestServer(t, tt.uow()), http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp []rest.Task
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w))
			}
		})
	}
}

func TestTodoListsServer_CreateTask(t *testing.T) {
	tests := map[string]struct {
		target         string
		requestBody    []byte
		expectedStatus int
		expectedText   string
	}{
		"success": {
			target:         "/api/v1/lists/" + primaryList.ID.String() + "/tasks",
			requestBody:    serializeJSON(t, rest.CreateTaskJSONRequestBody{Text: "buy milk"}),
			expectedStatus: http.StatusOK,
			expectedText:   "buy milk",
		},
		"invalid-json-body": {
			target:         "/api/v1/lists/" + primaryList.ID.String() + "/tasks",
			requestBody:    []byte(`not json`),
			expectedStatus: http.StatusBadRequest,
		},
		"invalid-list-id": {
			target:         "/api/v1/lists/nope/tasks",
			requestBody:    serializeJSON(t, rest.CreateTaskJSONRequestBody{Text: "buy milk"}),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := serve(newTestServer(t, newSeededStore()), http.MethodPost, tt.target, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedText == "" {
				return
			}
			var resp rest.Task
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedText, resp.Text)
			assert.Equal(t, primaryList.ID, resp.ListId)
			assert.False(t, resp.Completed)
			assert.Equal(t, fixedTime.UnixMilli(), resp.Touched)
		})
	}
}

func TestTodoListsServer_UpdateTask(t *testing.T) {
	tests := map[string]struct {
		target            string
		requestBody       []byte
		expectedStatus    int
		expectedCompleted bool
		expectedError     *rest.Error
	}{
		"complete-task": {
			target:            "/api/v1/tasks/" + primaryTask.ID.String(),
			requestBody:       []byte(`{"completed":true}`),
			expectedStatus:    http.StatusOK,
			expectedCompleted: true,
		},
		"uncomplete-task": {
			target:            "/api/v1/tasks/" + otherTask.ID.String(),
			requestBody:       []byte(`{"completed":false}`),
			expectedStatus:    http.StatusOK,
			expectedCompleted: false,
		},
		"task-not-found": {
			target:         "/api/v1/tasks/" + uuid.Nil.String(),
			requestBody:    []byte(`{"completed":true}`),
			expectedStatus: http.StatusNotFound,
			expectedError: &rest.Error{
				Code:    rest.NOTFOUND,
				Message: "task with ID " + uuid.Nil.String() + " not found",
			},
		},
		"invalid-json-body": {
			target:         "/api/v1/tasks/" + primaryTask.ID.String(),
			requestBody:    []byte(`{`),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := serve(newTestServer(t, newSeededStore()), http.MethodPatch, tt.target, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w))
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp rest.Task
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCompleted, resp.Completed)
		})
	}
}

func TestTodoListsServer_DeleteTask(t *testing.T) {
	tests := map[string]struct {
		target         string
		expectedStatus int
		expectedTasks  int
	}{
		"success": {
			target:         "/api/v1/tasks/" + primaryTask.ID.String(),
			expectedStatus: http.StatusNoContent,
			expectedTasks:  1,
		},
		"unknown-id-is-no-op": {
			target:         "/api/v1/tasks/" + uuid.NewString(),
			expectedStatus: http.StatusNoContent,
			expectedTasks:  2,
		},
		"invalid-id": {
			target:         "/api/v1/tasks/x",
			expectedStatus: http.StatusBadRequest,
			expectedTasks:  2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newSeededStore()
			w := serve(newTestServer(t, store), http.MethodDelete, tt.target, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			_, tasks := store.Snapshot()
			assert.Len(t, tasks, tt.expectedTasks)
		})
	}
}

func TestTodoListsServer_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/lists", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	newTestServer(t, memory.NewStore()).Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRespondStatus(t *testing.T) {
	tests := map[string]struct {
		status       int
		expectedCode rest.ErrorCode
	}{
		"not-found":    {status: http.StatusNotFound, expectedCode: rest.NOTFOUND},
		"conflict":     {status: http.StatusConflict, expectedCode: rest.BADREQUEST},
		"server-error": {status: http.StatusServiceUnavailable, expectedCode: rest.INTERNALERROR},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondStatus(w, tt.status)

			assert.Equal(t, tt.status, w.Code)
			errResp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, errResp.Code)
			assert.Equal(t, http.StatusText(tt.status), errResp.Message)
		})
	}
}
