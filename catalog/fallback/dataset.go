package fallback

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/marcelsud/library-console/catalog"
	"gopkg.in/yaml.v3"
)

/* Dataset is the fixed sample catalog substituted for live data when reads fail.
 * It is loaded once and never changes: accessors return copies.
 */

//go:embed dataset.yaml
var embedded []byte

const (
	UnknownAuthor = "Autor desconhecido"
	UnknownGenre  = "Gênero desconhecido"
)

// File represents the structure of dataset.yaml
type File struct {
	Genres  []GenreConfig  `yaml:"genres"`
	Authors []AuthorConfig `yaml:"authors"`
	Books   []BookConfig   `yaml:"books"`
}

type GenreConfig struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type AuthorConfig struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Nationality string `yaml:"nationality"`
}

type BookConfig struct {
	ID              int64  `yaml:"id"`
	Title           string `yaml:"title"`
	ISBN            string `yaml:"isbn"`
	Edition         string `yaml:"edition"`
	PublicationYear *int   `yaml:"publication_year"` // Optional
	Synopsis        string `yaml:"synopsis"`
	GenreID         int64  `yaml:"genre_id"`
	AuthorID        int64  `yaml:"author_id"`
}

type Dataset struct {
	genres  []catalog.Genre
	authors []catalog.Author
	books   []catalog.Book
}

// Load parses the dataset compiled into the binary
func Load() (*Dataset, error) {
	return Parse(embedded)
}

// LoadFile reads and parses a dataset file
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a dataset document
func Parse(data []byte) (*Dataset, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing dataset YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validating dataset: %w", err)
	}

	d := &Dataset{}
	for _, g := range f.Genres {
		d.genres = append(d.genres, catalog.Genre{ID: g.ID, Name: g.Name, Description: g.Description})
	}
	for _, a := range f.Authors {
		d.authors = append(d.authors, catalog.Author{ID: a.ID, Name: a.Name, Nationality: a.Nationality})
	}
	for _, b := range f.Books {
		d.books = append(d.books, catalog.Book{
			ID:              b.ID,
			IDGenre:         b.GenreID,
			IDAuthor:        b.AuthorID,
			Title:           b.Title,
			Synopsis:        b.Synopsis,
			ISBN:            b.ISBN,
			Edition:         b.Edition,
			PublicationYear: b.PublicationYear,
		})
	}
	sort.Slice(d.genres, func(i, j int) bool { return d.genres[i].ID < d.genres[j].ID })
	sort.Slice(d.authors, func(i, j int) bool { return d.authors[i].ID < d.authors[j].ID })
	sort.Slice(d.books, func(i, j int) bool { return d.books[i].ID < d.books[j].ID })
	return d, nil
}

// Validate checks ids and required fields. Book references are not checked:
// unresolved ones are rendered as unknown.
func (f File) Validate() error {
	seen := make(map[int64]bool)
	for _, g := range f.Genres {
		if err := checkID("genre", g.ID, seen); err != nil {
			return err
		}
		if g.Name == "" {
			return fmt.Errorf("name cannot be empty for genre %d", g.ID)
		}
	}
	seen = make(map[int64]bool)
	for _, a := range f.Authors {
		if err := checkID("author", a.ID, seen); err != nil {
			return err
		}
		if a.Name == "" {
			return fmt.Errorf("name cannot be empty for author %d", a.ID)
		}
	}
	seen = make(map[int64]bool)
	for _, b := range f.Books {
		if err := checkID("book", b.ID, seen); err != nil {
			return err
		}
		if b.Title == "" {
			return fmt.Errorf("title cannot be empty for book %d", b.ID)
		}
		if y := b.PublicationYear; y != nil && (*y < 1000 || *y > 2100) {
			return fmt.Errorf("publication_year must be between 1000 and 2100 for book %d (got %d)", b.ID, *y)
		}
	}
	return nil
}

func checkID(kind string, id int64, seen map[int64]bool) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be positive (got %d)", kind, id)
	}
	if seen[id] {
		return fmt.Errorf("duplicate %s id %d", kind, id)
	}
	seen[id] = true
	return nil
}

func (d *Dataset) Genres() []catalog.Genre {
	return append([]catalog.Genre(nil), d.genres...)
}

func (d *Dataset) Authors() []catalog.Author {
	return append([]catalog.Author(nil), d.authors...)
}

// Books returns every book joined with its author and genre names, ordered by id
func (d *Dataset) Books() []catalog.BookView {
	views := make([]catalog.BookView, 0, len(d.books))
	for _, b := range d.books {
		views = append(views, d.view(b))
	}
	return views
}

func (d *Dataset) Genre(id int64) (catalog.Genre, bool) {
	for _, g := range d.genres {
		if g.ID == id {
			return g, true
		}
	}
	return catalog.Genre{}, false
}

func (d *Dataset) Author(id int64) (catalog.Author, bool) {
	for _, a := range d.authors {
		if a.ID == id {
			return a, true
		}
	}
	return catalog.Author{}, false
}

func (d *Dataset) Book(id int64) (catalog.BookView, bool) {
	for _, b := range d.books {
		if b.ID == id {
			return d.view(b), true
		}
	}
	return catalog.BookView{}, false
}

func (d *Dataset) view(b catalog.Book) catalog.BookView {
	v := catalog.BookView{
		ID:         b.ID,
		IDGenre:    b.IDGenre,
		IDAuthor:   b.IDAuthor,
		Title:      b.Title,
		Synopsis:   b.Synopsis,
		ISBN:       b.ISBN,
		Edition:    b.Edition,
		AuthorName: UnknownAuthor,
		GenreName:  UnknownGenre,
	}
	if b.PublicationYear != nil {
		y := *b.PublicationYear
		v.PublicationYear = &y
	}
	if a, ok := d.Author(b.IDAuthor); ok {
		v.AuthorName = a.Name
	}
	if g, ok := d.Genre(b.IDGenre); ok {
		v.GenreName = g.Name
	}
	return v
}
