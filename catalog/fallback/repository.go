package fallback

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/marcelsud/library-console/catalog"
	"github.com/rs/zerolog"
)

// Repository wraps a catalog.Repository and answers failed reads from the dataset.
// Writes are passed through unchanged.
type Repository struct {
	catalog.Writer
	next      catalog.Reader
	data      *Dataset
	policy    Policy
	logger    zerolog.Logger
	fallbacks atomic.Int64
}

func NewRepository(next catalog.Repository, data *Dataset, policy Policy, logger zerolog.Logger) *Repository {
	return &Repository{
		Writer: next,
		next:   next,
		data:   data,
		policy: policy,
		logger: logger,
	}
}

// Fallbacks returns how many reads were answered from the dataset.
func (r *Repository) Fallbacks() int64 {
	return r.fallbacks.Load()
}

func (r *Repository) ListBooks(ctx context.Context) ([]catalog.BookView, error) {
	books, err := r.next.ListBooks(ctx)
	if !r.use(err, catalog.Books, 0) {
		return books, err
	}
	return r.data.Books(), nil
}

func (r *Repository) GetBook(ctx context.Context, id int64) (catalog.BookView, error) {
	b, err := r.next.GetBook(ctx, id)
	if !r.use(err, catalog.Books, id) {
		return b, err
	}
	b, ok := r.data.Book(id)
	if !ok {
		return catalog.BookView{}, catalog.NotFoundError("Livro não encontrado")
	}
	return b, nil
}

func (r *Repository) ListAuthors(ctx context.Context) ([]catalog.Author, error) {
	authors, err := r.next.ListAuthors(ctx)
	if !r.use(err, catalog.Authors, 0) {
		return authors, err
	}
	return r.data.Authors(), nil
}

func (r *Repository) GetAuthor(ctx context.Context, id int64) (catalog.Author, error) {
	a, err := r.next.GetAuthor(ctx, id)
	if !r.use(err, catalog.Authors, id) {
		return a, err
	}
	a, ok := r.data.Author(id)
	if !ok {
		return catalog.Author{}, catalog.NotFoundError("Autor não encontrado")
	}
	return a, nil
}

func (r *Repository) ListGenres(ctx context.Context) ([]catalog.Genre, error) {
	genres, err := r.next.ListGenres(ctx)
	if !r.use(err, catalog.Genres, 0) {
		return genres, err
	}
	return r.data.Genres(), nil
}

func (r *Repository) GetGenre(ctx context.Context, id int64) (catalog.Genre, error) {
	g, err := r.next.GetGenre(ctx, id)
	if !r.use(err, catalog.Genres, id) {
		return g, err
	}
	g, ok := r.data.Genre(id)
	if !ok {
		return catalog.Genre{}, catalog.NotFoundError("Gênero não encontrado")
	}
	return g, nil
}

// use classifies a read failure and logs the switch to sample data.
// Context cancellation is never covered.
func (r *Repository) use(err error, kind catalog.Kind, id int64) bool {
	if err == nil || ctxErr(err) || !r.policy.Covers(err) {
		return false
	}
	r.fallbacks.Add(1)
	ev := r.logger.Warn().Err(err).Str("kind", kind.String())
	if id != 0 {
		ev = ev.Int64("id", id)
	}
	ev.Msg("API não disponível, usando dados de exemplo")
	return true
}

func ctxErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
