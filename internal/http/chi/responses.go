package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/library-console/catalog"
)

/*
* Representa o resultado de uma mutação na camada web
 */
type mutationResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError maps a failure to its status; message is what the user sees
func writeError(w http.ResponseWriter, err error, message string) {
	writeJSON(w, statusOf(err), errorResponse{Error: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, catalog.ErrInvalid), errors.Is(err, catalog.ErrNoSubject):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrUnreachable), errors.Is(err, catalog.ErrHTTP):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &catalog.ValidationError{Field: "id", Message: "Identificador inválido"}
	}
	return id, nil
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &catalog.ValidationError{Field: "body", Message: "Dados inválidos"}
	}
	return nil
}

// busy refuses a mutation while the same (kind, operation) is still pending
func busy(w http.ResponseWriter, svc catalog.UseCase, kind catalog.Kind, op catalog.Operation) bool {
	if svc.Mutation(kind, op).Status != catalog.Pending {
		return false
	}
	writeJSON(w, http.StatusConflict, errorResponse{Error: "Operação em andamento, aguarde"})
	return true
}

func getMutations(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all := svc.Mutations()
		if all == nil {
			all = []catalog.MutationState{}
		}
		writeJSON(w, http.StatusOK, all)
	})
}

func getStats(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		writeJSON(w, http.StatusOK, st)
	})
}
