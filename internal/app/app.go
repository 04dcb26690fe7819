package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/config"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/log"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/seed"
	"github.com/cleitonmarx/todolists/internal/adapters/outbound/time"
	"github.com/cleitonmarx/todolists/internal/telemetry"
	"github.com/cleitonmarx/todolists/internal/usecases"
)

// NewTodoListsApp creates and returns a new instance of the TodoLists application.
func NewTodoListsApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitVaultProvider{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&memory.InitStore{},
			&seed.InitSeed{},
			&time.InitCurrentTimeProvider{},

			&usecases.InitListLists{},
			&usecases.InitCreateList{},
			&usecases.InitDeleteList{},
			&usecases.InitListTasks{},
			&usecases.InitCreateTask{},
			&usecases.InitUpdateTask{},
			&usecases.InitDeleteTask{},
		).
		Host(
			&http.TodoListsServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
