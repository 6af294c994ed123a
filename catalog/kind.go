package catalog

import "fmt"

/* Kind identifies one of the three catalog collections.
 * Its string form is both the REST path segment and the cache key prefix.
 */
type Kind int

const (
	Books Kind = iota + 1
	Authors
	Genres
)

// Kinds lists every collection in display order.
var Kinds = []Kind{Books, Authors, Genres}

func (k Kind) String() string {
	switch k {
	case Books:
		return "books"
	case Authors:
		return "authors"
	case Genres:
		return "genres"
	default:
		return "unknown"
	}
}

// NewKind creates a Kind from its path segment. Unknown values yield an invalid Kind.
func NewKind(s string) Kind {
	switch s {
	case "books":
		return Books
	case "authors":
		return Authors
	case "genres":
		return Genres
	default:
		return 0
	}
}

// Validate checks if the kind is valid
func (k Kind) Validate() error {
	if k < Books || k > Genres {
		return fmt.Errorf("invalid kind: %d", k)
	}
	return nil
}

// noun returns the capitalized pt-BR noun used in user messages.
func (k Kind) noun() string {
	switch k {
	case Books:
		return "Livro"
	case Authors:
		return "Autor"
	case Genres:
		return "Gênero"
	default:
		return "Registro"
	}
}
