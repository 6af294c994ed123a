package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/marcelsud/library-console/catalog"
	"github.com/marcelsud/library-console/catalog/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func run(t *testing.T, svc catalog.UseCase, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(svc, &out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListBooksWithSearch(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("Books", mock.Anything).Return([]catalog.BookView{
		{ID: 1, Title: "Dom Casmurro"},
		{ID: 2, Title: "O Cortiço"},
	}, nil)

	out, err := run(t, svc, "list", "books", "--search", "casmurro")
	assert.Nil(t, err)
	var books []catalog.BookView
	assert.Nil(t, json.Unmarshal([]byte(out), &books))
	assert.Len(t, books, 1)
	assert.Equal(t, int64(1), books[0].ID)
}

func TestGetUnknownKind(t *testing.T) {
	svc := mocks.NewUseCase(t)
	_, err := run(t, svc, "get", "magazines", "1")
	assert.ErrorContains(t, err, "unknown collection")
}

func TestGetInvalidID(t *testing.T) {
	svc := mocks.NewUseCase(t)
	_, err := run(t, svc, "get", "genres", "abc")
	assert.ErrorContains(t, err, "invalid id")
}

func TestGetNotFound(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("Genre", mock.Anything, int64(9)).Return(catalog.Genre{}, catalog.NotFoundError("Gênero não encontrado"))
	_, err := run(t, svc, "get", "genres", "9")
	assert.EqualError(t, err, "Gênero não encontrado")
}

func TestCreateAuthor(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("CreateAuthor", mock.Anything, catalog.CreateAuthor{Name: "Clarice Lispector"}).
		Return(catalog.Author{ID: 5, Name: "Clarice Lispector"}, nil)

	out, err := run(t, svc, "create", "authors", "--data", `{"name":"Clarice Lispector"}`)
	assert.Nil(t, err)
	assert.Contains(t, out, "Autor criado com sucesso!")
	assert.Contains(t, out, `"id": 5`)
}

func TestCreateWithBadJSON(t *testing.T) {
	svc := mocks.NewUseCase(t)
	_, err := run(t, svc, "create", "genres", "--data", `{"name":`)
	assert.EqualError(t, err, "Erro ao criar gênero: Dados inválidos")
}

func TestUpdateBookFailure(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("Book", mock.Anything, int64(3)).Return(catalog.BookView{ID: 3, Title: "Duna", IDAuthor: 1, IDGenre: 1}, nil)
	svc.On("UpdateBook", mock.Anything, int64(3), mock.AnythingOfType("catalog.UpdateBook")).
		Return(&catalog.ValidationError{Field: "synopsis", Message: "A sinopse do livro é obrigatória"})
	_, err := run(t, svc, "update", "books", "3", "--data", `{"edition":"2ª"}`)
	assert.EqualError(t, err, "Erro ao atualizar livro: A sinopse do livro é obrigatória")
}

func TestUpdateBookKeepsCurrentFields(t *testing.T) {
	y := 1965
	svc := mocks.NewUseCase(t)
	svc.On("Book", mock.Anything, int64(3)).Return(catalog.BookView{
		ID: 3, Title: "Duna", Synopsis: "Arrakis", ISBN: "978-0441013593",
		IDAuthor: 2, IDGenre: 1, PublicationYear: &y, AuthorName: "Frank Herbert",
	}, nil)
	want := catalog.UpdateBook{ID: 3, CreateBook: catalog.CreateBook{
		Title: "Duna", Synopsis: "Arrakis", ISBN: "978-0441013593",
		IDAuthor: 2, IDGenre: 1, Edition: "2ª", PublicationYear: &y,
	}}
	svc.On("UpdateBook", mock.Anything, int64(3), want).Return(nil)

	out, err := run(t, svc, "update", "books", "3", "--data", `{"edition":"2ª"}`)
	assert.Nil(t, err)
	assert.Contains(t, out, "Livro atualizado com sucesso!")
}

func TestUpdateMissingGenre(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("Genre", mock.Anything, int64(8)).Return(catalog.Genre{}, catalog.NotFoundError("Gênero não encontrado"))
	_, err := run(t, svc, "update", "genres", "8", "--data", `{"name":"Poesia"}`)
	assert.EqualError(t, err, "Erro ao atualizar gênero: Gênero não encontrado")
}

func TestDeleteGenre(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("DeleteGenre", mock.Anything, int64(2)).Return(nil)
	out, err := run(t, svc, "delete", "genres", "2")
	assert.Nil(t, err)
	assert.Contains(t, out, "Gênero excluído com sucesso!")
}

func TestStats(t *testing.T) {
	svc := mocks.NewUseCase(t)
	svc.On("Stats", mock.Anything).Return(catalog.Stats{Books: 4, Authors: 3, Genres: 2}, nil)
	out, err := run(t, svc, "stats")
	assert.Nil(t, err)
	var st catalog.Stats
	assert.Nil(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, catalog.Stats{Books: 4, Authors: 3, Genres: 2}, st)
}
