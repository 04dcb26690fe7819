// Package mockbackend serves the todo lists REST API from an in-memory store
// for the lifetime of a single test, with per-route failure injection.
package mockbackend

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	todohttp "github.com/cleitonmarx/todolists/internal/adapters/inbound/http"
	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/memory"
	todotime "github.com/cleitonmarx/todolists/internal/adapters/outbound/time"
	"github.com/cleitonmarx/todolists/internal/domain"
	"github.com/cleitonmarx/todolists/internal/usecases"
)

var routes = []string{
	rest.RouteListLists,
	rest.RouteCreateList,
	rest.RouteDeleteList,
	rest.RouteListTasks,
	rest.RouteCreateTask,
	rest.RouteUpdateTask,
	rest.RouteDeleteTask,
}

// Option configures a Backend.
type Option func(*Backend)

// WithState seeds the backend with the lists and tasks of state.
func WithState(state domain.ApplicationState) Option {
	return func(b *Backend) {
		b.store.Seed(state)
	}
}

// WithLogger sets the logger used by the REST handlers.
func WithLogger(logger *log.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// Backend is a per-test REST API server.
type Backend struct {
	store   *memory.Store
	logger  *log.Logger
	server  *httptest.Server
	handler http.Handler
	matcher *http.ServeMux

	mu        sync.Mutex
	overrides map[string]http.Handler
	requests  map[string]int
	gates     []func()
	closeOnce sync.Once
}

// New starts a Backend and registers its shutdown with t.Cleanup.
func New(t testing.TB, opts ...Option) *Backend {
	t.Helper()

	b := &Backend{
		store:     memory.NewStore(),
		logger:    log.New(io.Discard, "", 0),
		matcher:   http.NewServeMux(),
		overrides: map[string]http.Handler{},
		requests:  map[string]int{},
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, route := range routes {
		b.matcher.Handle(route, http.NotFoundHandler())
	}

	api := todohttp.TodoListsServer{
		Logger:            b.logger,
		ListListsUseCase:  usecases.NewListListsImpl(b.store),
		CreateListUseCase: usecases.NewCreateListImpl(b.store),
		DeleteListUseCase: usecases.NewDeleteListImpl(b.store),
		ListTasksUseCase:  usecases.NewListTasksImpl(b.store),
		CreateTaskUseCase: usecases.NewCreateTaskImpl(b.store, todotime.CurrentTimeProvider{}),
		UpdateTaskUseCase: usecases.NewUpdateTaskImpl(b.store, todotime.CurrentTimeProvider{}),
		DeleteTaskUseCase: usecases.NewDeleteTaskImpl(b.store),
	}

	b.handler = api.Handler()
	b.server = httptest.NewServer(b.intercept())
	t.Cleanup(b.Close)
	return b
}

// URL returns the base URL of the backend.
func (b *Backend) URL() string {
	return b.server.URL
}

// Client returns an HTTP client wired to the backend.
func (b *Backend) Client() *http.Client {
	return b.server.Client()
}

// Lists returns a snapshot of the stored lists.
func (b *Backend) Lists() []domain.List {
	lists, _ := b.store.Snapshot()
	return lists
}

// Tasks returns a snapshot of the stored tasks.
func (b *Backend) Tasks() []domain.Task {
	_, tasks := b.store.Snapshot()
	return tasks
}

// Requests returns how many requests matching route were received,
// overridden ones included.
func (b *Backend) Requests(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[route]
}

// Fail makes route answer with status and an error body.
func (b *Backend) Fail(route string, status int) {
	b.override(route, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			todohttp.RespondStatus(w, status)
		})
	})
}

// Delay makes route wait for d before running the real handler.
func (b *Backend) Delay(route string, d time.Duration) {
	b.override(route, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(d):
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	})
}

// Block holds every request on route until the returned release function is
// called. Released requests run the real handler.
func (b *Backend) Block(route string) (release func()) {
	return b.hold(route, func(next http.Handler) http.Handler { return next })
}

// BlockFailing holds every request on route until released, then answers
// with status and an error body.
func (b *Backend) BlockFailing(route string, status int) (release func()) {
	return b.hold(route, func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			todohttp.RespondStatus(w, status)
		})
	})
}

func (b *Backend) hold(route string, then func(next http.Handler) http.Handler) (release func()) {
	gate := make(chan struct{})
	var once sync.Once
	release = func() {
		once.Do(func() { close(gate) })
	}

	b.mu.Lock()
	b.gates = append(b.gates, release)
	b.mu.Unlock()

	b.override(route, func(next http.Handler) http.Handler {
		after := then(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-gate:
				after.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	})
	return release
}

// ResetHandlers drops every override. Pending blocked requests are released.
func (b *Backend) ResetHandlers() {
	b.mu.Lock()
	gates := b.gates
	b.gates = nil
	b.overrides = map[string]http.Handler{}
	b.mu.Unlock()

	for _, release := range gates {
		release()
	}
}

// Close releases blocked requests and shuts the server down.
func (b *Backend) Close() {
	b.closeOnce.Do(func() {
		b.ResetHandlers()
		b.server.Close()
	})
}

func (b *Backend) override(route string, wrap func(next http.Handler) http.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overrides[route] = wrap(b.handler)
}

// intercept counts requests per route and hands them to the override
// registered for their route, if any.
func (b *Backend) intercept() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, route := b.matcher.Handler(r)

		b.mu.Lock()
		h, overridden := b.overrides[route]
		if route != "" {
			b.requests[route]++
		}
		b.mu.Unlock()

		if overridden {
			h.ServeHTTP(w, r)
			return
		}
		b.handler.ServeHTTP(w, r)
	})
}
