package catalog

import "context"

/* Interfaces pequenas, uma por coleção.
 * Reads and writes are split so the fallback decorator can wrap only the reads.
 */

type BookReader interface {
	ListBooks(ctx context.Context) ([]BookView, error)
	GetBook(ctx context.Context, id int64) (BookView, error)
}

type BookWriter interface {
	CreateBook(ctx context.Context, dto CreateBook) (Book, error)
	UpdateBook(ctx context.Context, id int64, dto UpdateBook) error
	DeleteBook(ctx context.Context, id int64) error
}

type AuthorReader interface {
	ListAuthors(ctx context.Context) ([]Author, error)
	GetAuthor(ctx context.Context, id int64) (Author, error)
}

type AuthorWriter interface {
	CreateAuthor(ctx context.Context, dto CreateAuthor) (Author, error)
	UpdateAuthor(ctx context.Context, id int64, dto UpdateAuthor) error
	DeleteAuthor(ctx context.Context, id int64) error
}

type GenreReader interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	GetGenre(ctx context.Context, id int64) (Genre, error)
}

type GenreWriter interface {
	CreateGenre(ctx context.Context, dto CreateGenre) (Genre, error)
	UpdateGenre(ctx context.Context, id int64, dto UpdateGenre) error
	DeleteGenre(ctx context.Context, id int64) error
}

/* Composição de interfaces */

type Reader interface {
	BookReader
	AuthorReader
	GenreReader
}

type Writer interface {
	BookWriter
	AuthorWriter
	GenreWriter
}

type Repository interface {
	Reader
	Writer
}
