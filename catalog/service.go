package catalog

import (
	"context"
	"fmt"

	"github.com/marcelsud/library-console/cache"
	"github.com/rs/zerolog"
)

/*
 * Service é o ponto único de acesso aos dados do console.
 * Reads go through the query cache; writes go straight to the repository and
 * invalidate the affected keys before returning.
 */

type UseCase interface {
	Books(ctx context.Context) ([]BookView, error)
	Book(ctx context.Context, id int64) (BookView, error)
	CreateBook(ctx context.Context, dto CreateBook) (Book, error)
	UpdateBook(ctx context.Context, id int64, dto UpdateBook) error
	DeleteBook(ctx context.Context, id int64) error

	Authors(ctx context.Context) ([]Author, error)
	Author(ctx context.Context, id int64) (Author, error)
	CreateAuthor(ctx context.Context, dto CreateAuthor) (Author, error)
	UpdateAuthor(ctx context.Context, id int64, dto UpdateAuthor) error
	DeleteAuthor(ctx context.Context, id int64) error

	Genres(ctx context.Context) ([]Genre, error)
	Genre(ctx context.Context, id int64) (Genre, error)
	CreateGenre(ctx context.Context, dto CreateGenre) (Genre, error)
	UpdateGenre(ctx context.Context, id int64, dto UpdateGenre) error
	DeleteGenre(ctx context.Context, id int64) error

	Mutation(kind Kind, op Operation) MutationState
	Mutations() []MutationState
	Stats(ctx context.Context) (Stats, error)
}

type Service struct {
	Repo      Repository
	Store     *cache.Store
	mutations *Mutations
	logger    zerolog.Logger
}

func NewService(repo Repository, store *cache.Store, logger zerolog.Logger) *Service {
	return &Service{
		Repo:      repo,
		Store:     store,
		mutations: NewMutations(),
		logger:    logger,
	}
}

func (s *Service) Books(ctx context.Context) ([]BookView, error) {
	all, err := cache.Fetch(ctx, s.Store, listKey(Books), s.Repo.ListBooks)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return all, nil
}

func (s *Service) Book(ctx context.Context, id int64) (BookView, error) {
	if id <= 0 {
		return BookView{}, ErrNoSubject
	}
	b, err := cache.Fetch(ctx, s.Store, itemKey(Books, id), func(ctx context.Context) (BookView, error) {
		return s.Repo.GetBook(ctx, id)
	})
	if err != nil {
		return BookView{}, fmt.Errorf("getting book: %w", err)
	}
	return b, nil
}

func (s *Service) CreateBook(ctx context.Context, dto CreateBook) (Book, error) {
	dto = dto.Normalize()
	if err := ValidateBook(dto); err != nil {
		return Book{}, err
	}
	var created Book
	err := s.mutate(ctx, Books, Create, 0, func(ctx context.Context) error {
		var err error
		created, err = s.Repo.CreateBook(ctx, dto)
		return err
	})
	if err != nil {
		return Book{}, fmt.Errorf("creating book: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int64, dto UpdateBook) error {
	if id <= 0 {
		return ErrNoSubject
	}
	dto.ID = id
	dto.CreateBook = dto.CreateBook.Normalize()
	if err := ValidateBook(dto.CreateBook); err != nil {
		return err
	}
	err := s.mutate(ctx, Books, Update, id, func(ctx context.Context) error {
		return s.Repo.UpdateBook(ctx, id, dto)
	})
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	return nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNoSubject
	}
	err := s.mutate(ctx, Books, Delete, id, func(ctx context.Context) error {
		return s.Repo.DeleteBook(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}

func (s *Service) Authors(ctx context.Context) ([]Author, error) {
	all, err := cache.Fetch(ctx, s.Store, listKey(Authors), s.Repo.ListAuthors)
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}
	return all, nil
}

func (s *Service) Author(ctx context.Context, id int64) (Author, error) {
	if id <= 0 {
		return Author{}, ErrNoSubject
	}
	a, err := cache.Fetch(ctx, s.Store, itemKey(Authors, id), func(ctx context.Context) (Author, error) {
		return s.Repo.GetAuthor(ctx, id)
	})
	if err != nil {
		return Author{}, fmt.Errorf("getting author: %w", err)
	}
	return a, nil
}

func (s *Service) CreateAuthor(ctx context.Context, dto CreateAuthor) (Author, error) {
	dto = dto.Normalize()
	if err := ValidateAuthor(dto); err != nil {
		return Author{}, err
	}
	var created Author
	err := s.mutate(ctx, Authors, Create, 0, func(ctx context.Context) error {
		var err error
		created, err = s.Repo.CreateAuthor(ctx, dto)
		return err
	})
	if err != nil {
		return Author{}, fmt.Errorf("creating author: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, dto UpdateAuthor) error {
	if id <= 0 {
		return ErrNoSubject
	}
	dto.ID = id
	dto.CreateAuthor = dto.CreateAuthor.Normalize()
	if err := ValidateAuthor(dto.CreateAuthor); err != nil {
		return err
	}
	err := s.mutate(ctx, Authors, Update, id, func(ctx context.Context) error {
		return s.Repo.UpdateAuthor(ctx, id, dto)
	})
	if err != nil {
		return fmt.Errorf("updating author: %w", err)
	}
	return nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNoSubject
	}
	err := s.mutate(ctx, Authors, Delete, id, func(ctx context.Context) error {
		return s.Repo.DeleteAuthor(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return nil
}

func (s *Service) Genres(ctx context.Context) ([]Genre, error) {
	all, err := cache.Fetch(ctx, s.Store, listKey(Genres), s.Repo.ListGenres)
	if err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}
	return all, nil
}

func (s *Service) Genre(ctx context.Context, id int64) (Genre, error) {
	if id <= 0 {
		return Genre{}, ErrNoSubject
	}
	g, err := cache.Fetch(ctx, s.Store, itemKey(Genres, id), func(ctx context.Context) (Genre, error) {
		return s.Repo.GetGenre(ctx, id)
	})
	if err != nil {
		return Genre{}, fmt.Errorf("getting genre: %w", err)
	}
	return g, nil
}

func (s *Service) CreateGenre(ctx context.Context, dto CreateGenre) (Genre, error) {
	dto = dto.Normalize()
	if err := ValidateGenre(dto); err != nil {
		return Genre{}, err
	}
	var created Genre
	err := s.mutate(ctx, Genres, Create, 0, func(ctx context.Context) error {
		var err error
		created, err = s.Repo.CreateGenre(ctx, dto)
		return err
	})
	if err != nil {
		return Genre{}, fmt.Errorf("creating genre: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateGenre(ctx context.Context, id int64, dto UpdateGenre) error {
	if id <= 0 {
		return ErrNoSubject
	}
	dto.ID = id
	dto.CreateGenre = dto.CreateGenre.Normalize()
	if err := ValidateGenre(dto.CreateGenre); err != nil {
		return err
	}
	err := s.mutate(ctx, Genres, Update, id, func(ctx context.Context) error {
		return s.Repo.UpdateGenre(ctx, id, dto)
	})
	if err != nil {
		return fmt.Errorf("updating genre: %w", err)
	}
	return nil
}

func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNoSubject
	}
	err := s.mutate(ctx, Genres, Delete, id, func(ctx context.Context) error {
		return s.Repo.DeleteGenre(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting genre: %w", err)
	}
	return nil
}

func (s *Service) Mutation(kind Kind, op Operation) MutationState {
	return s.mutations.State(kind, op)
}

func (s *Service) Mutations() []MutationState {
	return s.mutations.All()
}

// PendingMutations returns how many (kind, operation) pairs are in flight.
func (s *Service) PendingMutations() int {
	return s.mutations.PendingCount()
}

// Stats counts the cached collections shown on the home page.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	books, err := s.Books(ctx)
	if err != nil {
		return Stats{}, err
	}
	authors, err := s.Authors(ctx)
	if err != nil {
		return Stats{}, err
	}
	genres, err := s.Genres(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Books: len(books), Authors: len(authors), Genres: len(genres)}, nil
}

/* mutate runs one write and, when it succeeds, invalidates what it touched:
 * create -> (kind); update and delete -> (kind) and (kind, id).
 * A failed write leaves the cache as it was.
 */
func (s *Service) mutate(ctx context.Context, kind Kind, op Operation, id int64, call func(ctx context.Context) error) error {
	mutationID := s.mutations.begin(kind, op)
	err := call(ctx)
	if err == nil {
		keys := []cache.Key{listKey(kind)}
		if op != Create {
			keys = append(keys, itemKey(kind, id))
		}
		if err = s.Store.Invalidate(ctx, keys...); err != nil {
			s.logger.Error().Err(err).Str("kind", kind.String()).Str("operation", op.String()).Msg("invalidating cache")
		}
	}
	s.mutations.settle(kind, op, mutationID, err)
	return err
}

func listKey(kind Kind) cache.Key {
	return cache.List(kind.String())
}

func itemKey(kind Kind, id int64) cache.Key {
	return cache.Item(kind.String(), id)
}
