package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/marcelsud/library-console/cache"
	"github.com/marcelsud/library-console/cache/memory"
	"github.com/marcelsud/library-console/catalog"
	"github.com/marcelsud/library-console/catalog/mocks" /* Gosto do https://github.com/vektra/mockery para gerar os mocks */
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*catalog.Service, *mocks.Repository, *cache.Store) {
	t.Helper()
	repo := mocks.NewRepository(t)
	store := cache.New(memory.New(time.Hour))
	t.Cleanup(func() { _ = store.Close() })
	return catalog.NewService(repo, store, zerolog.Nop()), repo, store
}

func year(y int) *int {
	return &y
}

func validBook() catalog.CreateBook {
	return catalog.CreateBook{
		Title:           "Duna",
		Synopsis:        "Política e especiarias em Arrakis",
		ISBN:            "978-85-7657-313-0",
		IDAuthor:        1,
		IDGenre:         1,
		PublicationYear: year(1965),
	}
}

func TestBooks(t *testing.T) {
	ctx := context.Background()
	t.Run("list is fetched once and then served from cache", func(t *testing.T) {
		s, repo, _ := newService(t)
		books := []catalog.BookView{{ID: 1, Title: "Fundação", AuthorName: "Isaac Asimov", GenreName: "Ficção Científica"}}
		repo.On("ListBooks", mock.Anything).Return(books, nil).Once()

		got, err := s.Books(ctx)
		require.NoError(t, err)
		assert.Equal(t, books, got)
		got, err = s.Books(ctx)
		require.NoError(t, err)
		assert.Equal(t, books, got)
	})
	t.Run("list failure is returned", func(t *testing.T) {
		s, repo, _ := newService(t)
		repo.On("ListBooks", mock.Anything).Return(nil, catalog.UnreachableError("http://localhost:5070/api/v1", nil))
		_, err := s.Books(ctx)
		assert.ErrorIs(t, err, catalog.ErrUnreachable)
	})
	t.Run("item with zero id is not fetched", func(t *testing.T) {
		s, _, _ := newService(t)
		_, err := s.Book(ctx, 0)
		assert.ErrorIs(t, err, catalog.ErrNoSubject)
	})
	t.Run("item is cached under its own key", func(t *testing.T) {
		s, repo, store := newService(t)
		repo.On("GetBook", mock.Anything, int64(4)).Return(catalog.BookView{ID: 4, Title: "Steve Jobs"}, nil).Once()
		b, err := s.Book(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "Steve Jobs", b.Title)
		_, err = s.Book(ctx, 4)
		require.NoError(t, err)
		_, ok := store.Peek(ctx, cache.Item("books", 4))
		assert.True(t, ok)
	})
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()
	t.Run("create then list includes the new book once", func(t *testing.T) {
		s, repo, _ := newService(t)
		before := []catalog.BookView{{ID: 1, Title: "Fundação"}}
		after := []catalog.BookView{{ID: 1, Title: "Fundação"}, {ID: 5, Title: "Duna"}}
		repo.On("ListBooks", mock.Anything).Return(before, nil).Once()
		repo.On("ListBooks", mock.Anything).Return(after, nil).Once()
		repo.On("CreateBook", mock.Anything, validBook()).Return(catalog.Book{ID: 5, Title: "Duna"}, nil).Once()

		_, err := s.Books(ctx)
		require.NoError(t, err)
		created, err := s.CreateBook(ctx, validBook())
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)

		got, err := s.Books(ctx)
		require.NoError(t, err)
		n := 0
		for _, b := range got {
			if b.ID == created.ID {
				n++
			}
		}
		assert.Equal(t, 1, n)
		assert.Equal(t, catalog.Succeeded, s.Mutation(catalog.Books, catalog.Create).Status)
	})
	t.Run("input is trimmed before it is sent", func(t *testing.T) {
		s, repo, _ := newService(t)
		dto := validBook()
		dto.Title = "  Duna  "
		repo.On("CreateBook", mock.Anything, validBook()).Return(catalog.Book{ID: 5}, nil).Once()
		_, err := s.CreateBook(ctx, dto)
		require.NoError(t, err)
	})
	t.Run("empty title never reaches the repository", func(t *testing.T) {
		s, _, _ := newService(t)
		dto := validBook()
		dto.Title = "   "
		_, err := s.CreateBook(ctx, dto)
		assert.ErrorIs(t, err, catalog.ErrInvalid)
		assert.Equal(t, "O título do livro é obrigatório", catalog.Message(err))
		assert.Equal(t, catalog.Idle, s.Mutation(catalog.Books, catalog.Create).Status)
	})
	t.Run("failure is reported and leaves state failed", func(t *testing.T) {
		s, repo, _ := newService(t)
		apiErr := &catalog.APIError{Kind: catalog.ErrInvalid, StatusCode: 400, Message: "ISBN duplicado"}
		repo.On("CreateBook", mock.Anything, validBook()).Return(catalog.Book{}, apiErr).Once()
		_, err := s.CreateBook(ctx, validBook())
		assert.ErrorIs(t, err, catalog.ErrInvalid)
		state := s.Mutation(catalog.Books, catalog.Create)
		assert.Equal(t, catalog.Failed, state.Status)
		assert.Equal(t, "ISBN duplicado", state.Reason)
		assert.Equal(t, "Erro ao criar livro: ISBN duplicado", catalog.FailureMessage(catalog.Books, catalog.Create, err))
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	t.Run("update then get reflects every field", func(t *testing.T) {
		s, repo, _ := newService(t)
		dto := catalog.UpdateBook{ID: 1, CreateBook: validBook()}
		repo.On("GetBook", mock.Anything, int64(1)).Return(catalog.BookView{ID: 1, Title: "Fundação"}, nil).Once()
		repo.On("UpdateBook", mock.Anything, int64(1), dto).Return(nil).Once()
		repo.On("GetBook", mock.Anything, int64(1)).Return(catalog.BookView{
			ID: 1, Title: dto.Title, Synopsis: dto.Synopsis, ISBN: dto.ISBN,
			IDAuthor: dto.IDAuthor, IDGenre: dto.IDGenre, PublicationYear: dto.PublicationYear,
		}, nil).Once()

		_, err := s.Book(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, s.UpdateBook(ctx, 1, catalog.UpdateBook{CreateBook: validBook()}))

		got, err := s.Book(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, dto.CreateBook, catalog.CreateBook{
			Title: got.Title, Synopsis: got.Synopsis, ISBN: got.ISBN,
			IDAuthor: got.IDAuthor, IDGenre: got.IDGenre, PublicationYear: got.PublicationYear,
		})
	})
	t.Run("failed update leaves the cached list unchanged and fresh", func(t *testing.T) {
		s, repo, store := newService(t)
		books := []catalog.BookView{{ID: 1, Title: "Fundação"}}
		repo.On("ListBooks", mock.Anything).Return(books, nil).Once()
		repo.On("UpdateBook", mock.Anything, int64(1), mock.Anything).Return(catalog.NotFoundError("Recurso não encontrado")).Once()

		_, err := s.Books(ctx)
		require.NoError(t, err)
		err = s.UpdateBook(ctx, 1, catalog.UpdateBook{CreateBook: validBook()})
		assert.ErrorIs(t, err, catalog.ErrNotFound)

		snap, ok := store.Peek(ctx, cache.List("books"))
		require.True(t, ok)
		assert.Equal(t, cache.Fresh, snap.Status)
		got, err := s.Books(ctx)
		require.NoError(t, err)
		assert.Equal(t, books, got)
	})
	t.Run("invalid year is rejected", func(t *testing.T) {
		s, _, _ := newService(t)
		dto := validBook()
		dto.PublicationYear = year(999)
		err := s.UpdateBook(ctx, 1, catalog.UpdateBook{CreateBook: dto})
		assert.Equal(t, "O ano de publicação deve estar entre 1000 e 2100", catalog.Message(err))
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	t.Run("delete then list excludes the book", func(t *testing.T) {
		s, repo, store := newService(t)
		repo.On("ListBooks", mock.Anything).Return([]catalog.BookView{{ID: 1}, {ID: 2}}, nil).Once()
		repo.On("GetBook", mock.Anything, int64(2)).Return(catalog.BookView{ID: 2}, nil).Once()
		repo.On("DeleteBook", mock.Anything, int64(2)).Return(nil).Once()
		repo.On("ListBooks", mock.Anything).Return([]catalog.BookView{{ID: 1}}, nil).Once()

		_, err := s.Books(ctx)
		require.NoError(t, err)
		_, err = s.Book(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, s.DeleteBook(ctx, 2))

		snap, ok := store.Peek(ctx, cache.Item("books", 2))
		require.True(t, ok)
		assert.Equal(t, cache.Invalidated, snap.Status)

		got, err := s.Books(ctx)
		require.NoError(t, err)
		for _, b := range got {
			assert.NotEqual(t, int64(2), b.ID)
		}
	})
}

func TestAuthorsAndGenres(t *testing.T) {
	ctx := context.Background()
	t.Run("author lifecycle", func(t *testing.T) {
		s, repo, _ := newService(t)
		repo.On("CreateAuthor", mock.Anything, catalog.CreateAuthor{Name: "Machado de Assis", Nationality: "Brasileiro"}).
			Return(catalog.Author{ID: 5, Name: "Machado de Assis", Nationality: "Brasileiro"}, nil).Once()
		repo.On("UpdateAuthor", mock.Anything, int64(5), catalog.UpdateAuthor{ID: 5, CreateAuthor: catalog.CreateAuthor{Name: "Machado"}}).Return(nil).Once()
		repo.On("GetAuthor", mock.Anything, int64(5)).Return(catalog.Author{ID: 5, Name: "Machado"}, nil).Once()
		repo.On("DeleteAuthor", mock.Anything, int64(5)).Return(nil).Once()

		a, err := s.CreateAuthor(ctx, catalog.CreateAuthor{Name: " Machado de Assis ", Nationality: "Brasileiro"})
		require.NoError(t, err)
		require.NoError(t, s.UpdateAuthor(ctx, a.ID, catalog.UpdateAuthor{CreateAuthor: catalog.CreateAuthor{Name: "Machado"}}))
		got, err := s.Author(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Machado", got.Name)
		require.NoError(t, s.DeleteAuthor(ctx, a.ID))
	})
	t.Run("author without name", func(t *testing.T) {
		s, _, _ := newService(t)
		_, err := s.CreateAuthor(ctx, catalog.CreateAuthor{})
		assert.Equal(t, "O nome do autor é obrigatório", catalog.Message(err))
	})
	t.Run("genre lifecycle", func(t *testing.T) {
		s, repo, _ := newService(t)
		repo.On("ListGenres", mock.Anything).Return([]catalog.Genre{}, nil).Once()
		repo.On("CreateGenre", mock.Anything, catalog.CreateGenre{Name: "Poesia", Description: "Versos"}).
			Return(catalog.Genre{ID: 5, Name: "Poesia", Description: "Versos"}, nil).Once()
		repo.On("ListGenres", mock.Anything).Return([]catalog.Genre{{ID: 5, Name: "Poesia"}}, nil).Once()
		repo.On("UpdateGenre", mock.Anything, int64(5), mock.Anything).Return(nil).Once()
		repo.On("GetGenre", mock.Anything, int64(5)).Return(catalog.Genre{ID: 5, Name: "Poesia Lírica"}, nil).Once()
		repo.On("DeleteGenre", mock.Anything, int64(5)).Return(nil).Once()

		all, err := s.Genres(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		_, err = s.CreateGenre(ctx, catalog.CreateGenre{Name: "Poesia", Description: "Versos"})
		require.NoError(t, err)
		all, err = s.Genres(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		require.NoError(t, s.UpdateGenre(ctx, 5, catalog.UpdateGenre{CreateGenre: catalog.CreateGenre{Name: "Poesia Lírica"}}))
		g, err := s.Genre(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Poesia Lírica", g.Name)
		require.NoError(t, s.DeleteGenre(ctx, 5))
	})
	t.Run("genre without name", func(t *testing.T) {
		s, _, _ := newService(t)
		_, err := s.CreateGenre(ctx, catalog.CreateGenre{Description: "x"})
		assert.Equal(t, "O nome do gênero é obrigatório", catalog.Message(err))
	})
	t.Run("zero ids", func(t *testing.T) {
		s, _, _ := newService(t)
		_, err := s.Author(ctx, 0)
		assert.ErrorIs(t, err, catalog.ErrNoSubject)
		_, err = s.Genre(ctx, 0)
		assert.ErrorIs(t, err, catalog.ErrNoSubject)
		assert.ErrorIs(t, s.DeleteGenre(ctx, 0), catalog.ErrNoSubject)
		assert.ErrorIs(t, s.UpdateAuthor(ctx, 0, catalog.UpdateAuthor{}), catalog.ErrNoSubject)
	})
}

func TestMutationPending(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newService(t)
	release := make(chan struct{})
	started := make(chan struct{})
	repo.On("DeleteGenre", mock.Anything, int64(3)).Run(func(args mock.Arguments) {
		close(started)
		<-release
	}).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.DeleteGenre(ctx, 3))
	}()
	<-started
	state := s.Mutation(catalog.Genres, catalog.Delete)
	assert.Equal(t, catalog.Pending, state.Status)
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, 1, s.PendingMutations())

	close(release)
	wg.Wait()
	assert.Equal(t, catalog.Succeeded, s.Mutation(catalog.Genres, catalog.Delete).Status)
	assert.Equal(t, 0, s.PendingMutations())
	assert.Len(t, s.Mutations(), 1)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newService(t)
	repo.On("ListBooks", mock.Anything).Return([]catalog.BookView{{ID: 1}, {ID: 2}}, nil).Once()
	repo.On("ListAuthors", mock.Anything).Return([]catalog.Author{{ID: 1}}, nil).Once()
	repo.On("ListGenres", mock.Anything).Return([]catalog.Genre{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Stats{Books: 2, Authors: 1, Genres: 3}, st)
	st, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Books)
}
