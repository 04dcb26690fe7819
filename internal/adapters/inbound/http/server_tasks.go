package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

func (api TodoListsServer) ListTasks(w http.ResponseWriter, r *http.Request) {
	var listID uuid.UUID
	if errResp, ok := bindPathUUID(r, "listId", &listID); !ok {
		respondError(w, errResp)
		return
	}

	tasks, err := api.ListTasksUseCase.Query(r.Context(), listID)
	if err != nil {
		api.Logger.Printf("Error listing tasks: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := []rest.Task{}
	for _, t := range tasks {
		resp = append(resp, toTask(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api TodoListsServer) CreateTask(w http.ResponseWriter, r *http.Request) {
	var listID uuid.UUID
	if errResp, ok := bindPathUUID(r, "listId", &listID); !ok {
		respondError(w, errResp)
		return
	}

	var req rest.CreateTaskJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body: %v", err))
		return
	}

	task, err := api.CreateTaskUseCase.Execute(r.Context(), listID, req.Text)
	if err != nil {
		api.Logger.Printf("Error creating task: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api TodoListsServer) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var taskID uuid.UUID
	if errResp, ok := bindPathUUID(r, "taskId", &taskID); !ok {
		respondError(w, errResp)
		return
	}

	var req rest.UpdateTaskJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body: %v", err))
		return
	}

	task, err := api.UpdateTaskUseCase.Execute(r.Context(), taskID, req.Completed)
	if err != nil {
		api.Logger.Printf("Error updating task: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTask(task))
}

func (api TodoListsServer) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var taskID uuid.UUID
	if errResp, ok := bindPathUUID(r, "taskId", &taskID); !ok {
		respondError(w, errResp)
		return
	}

	if err := api.DeleteTaskUseCase.Execute(r.Context(), taskID); err != nil {
		api.Logger.Printf("Error deleting task: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bindPathUUID binds the named path parameter into dest.
func bindPathUUID(r *http.Request, name string, dest *uuid.UUID) (rest.ErrorResp, bool) {
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return badRequest("invalid format for parameter %s: %v", name, err), false
	}
	return rest.ErrorResp{}, true
}
