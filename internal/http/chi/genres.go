package chi

import (
	"net/http"

	"github.com/marcelsud/library-console/catalog"
)

func getGenres(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.Genres(r.Context())
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		result := catalog.FilterGenres(all, r.URL.Query().Get("search"))
		if result == nil {
			result = []catalog.Genre{}
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getGenre(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		g, err := svc.Genre(r.Context(), id)
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		writeJSON(w, http.StatusOK, g)
	})
}

func postGenre(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Genres, catalog.Create) {
			return
		}
		var dto catalog.CreateGenre
		if err := decode(r, &dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Create, err))
			return
		}
		created, err := svc.CreateGenre(r.Context(), dto)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Create, err))
			return
		}
		writeJSON(w, http.StatusCreated, mutationResponse{
			Message: catalog.SuccessMessage(catalog.Genres, catalog.Create),
			Data:    created,
		})
	})
}

func putGenre(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Genres, catalog.Update) {
			return
		}
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Update, err))
			return
		}
		var dto catalog.UpdateGenre
		if err := decode(r, &dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Update, err))
			return
		}
		if err := svc.UpdateGenre(r.Context(), id, dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Update, err))
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: catalog.SuccessMessage(catalog.Genres, catalog.Update)})
	})
}

func deleteGenre(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Genres, catalog.Delete) {
			return
		}
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Delete, err))
			return
		}
		if err := svc.DeleteGenre(r.Context(), id); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Genres, catalog.Delete, err))
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: catalog.SuccessMessage(catalog.Genres, catalog.Delete)})
	})
}
