package chi

import (
	"net/http"

	"github.com/marcelsud/library-console/catalog"
)

func getBooks(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.Books(r.Context())
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		result := catalog.FilterBooks(all, r.URL.Query().Get("search"))
		if result == nil {
			result = []catalog.BookView{}
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func getBook(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		b, err := svc.Book(r.Context(), id)
		if err != nil {
			writeError(w, err, catalog.Message(err))
			return
		}
		writeJSON(w, http.StatusOK, b)
	})
}

func postBook(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Books, catalog.Create) {
			return
		}
		var dto catalog.CreateBook
		if err := decode(r, &dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Create, err))
			return
		}
		created, err := svc.CreateBook(r.Context(), dto)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Create, err))
			return
		}
		writeJSON(w, http.StatusCreated, mutationResponse{
			Message: catalog.SuccessMessage(catalog.Books, catalog.Create),
			Data:    created,
		})
	})
}

func putBook(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Books, catalog.Update) {
			return
		}
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Update, err))
			return
		}
		var dto catalog.UpdateBook
		if err := decode(r, &dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Update, err))
			return
		}
		if err := svc.UpdateBook(r.Context(), id, dto); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Update, err))
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: catalog.SuccessMessage(catalog.Books, catalog.Update)})
	})
}

func deleteBook(svc catalog.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if busy(w, svc, catalog.Books, catalog.Delete) {
			return
		}
		id, err := parseID(r)
		if err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Delete, err))
			return
		}
		if err := svc.DeleteBook(r.Context(), id); err != nil {
			writeError(w, err, catalog.FailureMessage(catalog.Books, catalog.Delete, err))
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: catalog.SuccessMessage(catalog.Books, catalog.Delete)})
	})
}
