package chi

import (
	"net/http"

	"github.com/marcelsud/library-console/catalog"
)

func getAuthors(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.Authors(r.Context())
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		result := catalog.FilterAuthors(all, r.URL.Query().Get("search"))
		if result == nil {
			result = []catalog.Author{}
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getAuthor(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		a, err := svc.Author(r.Context(), id)
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		writeJSON(w, http.StatusOK, a)
	})
}

func postAuthor(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Authors, catalog.Create) {
			return
		}
		var dto catalog.CreateAuthor
		if err := decode(r, &dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Create, err))
			return
		}
		created, err := svc.CreateAuthor(r.Context(), dto)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Create, err))
			return
		}
		writeJSON(w, http.StatusCreated, mutationResponse{
			Message: catalog.SuccessMessage(catalog.Authors, catalog.Create),
			Data:    created,
		})
	})
}

func putAuthor(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Authors, catalog.Update) {
			return
		}
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Update, err))
			return
		}
		var dto catalog.UpdateAuthor
		if err := decode(r, &dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Update, err))
			return
		}
		if err := svc.UpdateAuthor(r.Context(), id, dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Update, err))
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: catalog.SuccessMessage(catalog.Authors, catalog.Update)})
	})
}

func deleteAuthor(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Authors, catalog.Delete) {
			return
		}
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Delete, err))
			return
		}
		if err := svc.DeleteAuthor(r.Context(), id); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Authors, catalog.Delete, err))
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: catalog.SuccessMessage(catalog.Authors, catalog.Delete)})
	})
}
