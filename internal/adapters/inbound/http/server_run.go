package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/cleitonmarx/todolists/internal/usecases"
	"github.com/rs/cors"
)

// TodoListsServer is the REST API HTTP server for lists and tasks.
type TodoListsServer struct {
	Port              int                  `config:"HTTP_PORT" default:"8080"`
	Logger            *log.Logger          `resolve:""`
	ListListsUseCase  usecases.ListLists   `resolve:""`
	CreateListUseCase usecases.CreateList  `resolve:""`
	DeleteListUseCase usecases.DeleteList  `resolve:""`
	ListTasksUseCase  usecases.ListTasks   `resolve:""`
	CreateTaskUseCase usecases.CreateTask  `resolve:""`
	UpdateTaskUseCase usecases.UpdateTask  `resolve:""`
	DeleteTaskUseCase usecases.DeleteTask  `resolve:""`
}

// Handler builds the HTTP handler serving the REST API.
func (api TodoListsServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(rest.RouteListLists, api.ListLists)
	mux.HandleFunc(rest.RouteCreateList, api.CreateList)
	mux.HandleFunc(rest.RouteDeleteList, api.DeleteList)
	mux.HandleFunc(rest.RouteListTasks, api.ListTasks)
	mux.HandleFunc(rest.RouteCreateTask, api.CreateTask)
	mux.HandleFunc(rest.RouteUpdateTask, api.UpdateTask)
	mux.HandleFunc(rest.RouteDeleteTask, api.DeleteTask)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := telemetry.Middleware("todolists-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the TodoListsServer.
func (api TodoListsServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("TodoListsServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("TodoListsServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("TodoListsServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the TodoListsServer is ready by listing the lists.
func (api TodoListsServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/api/v1/lists", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
