package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/google/uuid"
)

func (api TodoListsServer) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := api.ListListsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing lists: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := []rest.List{}
	for _, l := range lists {
		resp = append(resp, toList(l))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api TodoListsServer) CreateList(w http.ResponseWriter, r *http.Request) {
	var req rest.CreateListJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body: %v", err))
		return
	}

	list, err := api.CreateListUseCase.Execute(r.Context(), req.Name)
	if err != nil {
		api.Logger.Printf("Error creating list: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toList(list))
}

func (api TodoListsServer) DeleteList(w http.ResponseWriter, r *http.Request) {
	var id uuid.UUID
	if errResp, ok := bindPathUUID(r, "id", &id); !ok {
		respondError(w, errResp)
		return
	}

	if err := api.DeleteListUseCase.Execute(r.Context(), id); err != nil {
		api.Logger.Printf("Error deleting list: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
