package main

import "github.com/cleitonmarx/todolists/internal/app"

func main() {
	err := app.NewTodoListsApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
