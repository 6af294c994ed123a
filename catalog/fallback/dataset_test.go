package fallback_test

import (
	"os"
	"testing"

	"github.com/marcelsud/library-console/catalog/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	d, err := fallback.Load()
	require.NoError(t, err)

	assert.Len(t, d.Genres(), 4)
	assert.Len(t, d.Authors(), 4)
	books := d.Books()
	require.Len(t, books, 4)

	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, "Fundação", books[0].Title)
	assert.Equal(t, "Isaac Asimov", books[0].AuthorName)
	assert.Equal(t, "Ficção Científica", books[0].GenreName)
	require.NotNil(t, books[0].PublicationYear)
	assert.Equal(t, 1951, *books[0].PublicationYear)
	assert.Equal(t, "Walter Isaacson", books[3].AuthorName)
	assert.Equal(t, "Biografia", books[3].GenreName)
}

func TestDatasetIsImmutable(t *testing.T) {
	d, err := fallback.Load()
	require.NoError(t, err)

	genres := d.Genres()
	genres[0].Name = "changed"
	books := d.Books()
	*books[0].PublicationYear = 1
	books[0].Title = "changed"

	g, ok := d.Genre(1)
	require.True(t, ok)
	assert.Equal(t, "Ficção Científica", g.Name)
	b, ok := d.Book(1)
	require.True(t, ok)
	assert.Equal(t, "Fundação", b.Title)
	assert.Equal(t, 1951, *b.PublicationYear)
}

func TestParse(t *testing.T) {
	t.Run("unresolved references are unknown", func(t *testing.T) {
		d, err := fallback.Parse([]byte(`
books:
  - id: 7
    title: "Órfão"
    genre_id: 9
    author_id: 9
`))
		require.NoError(t, err)
		b, ok := d.Book(7)
		require.True(t, ok)
		assert.Equal(t, fallback.UnknownAuthor, b.AuthorName)
		assert.Equal(t, fallback.UnknownGenre, b.GenreName)
		assert.Nil(t, b.PublicationYear)
	})
	t.Run("books are ordered by id", func(t *testing.T) {
		d, err := fallback.Parse([]byte(`
books:
  - {id: 3, title: "C"}
  - {id: 1, title: "A"}
  - {id: 2, title: "B"}
`))
		require.NoError(t, err)
		books := d.Books()
		assert.Equal(t, []string{"A", "B", "C"}, []string{books[0].Title, books[1].Title, books[2].Title})
	})
	tests := map[string]string{
		"duplicate id":  "genres:\n  - {id: 1, name: a}\n  - {id: 1, name: b}\n",
		"zero id":       "authors:\n  - {id: 0, name: a}\n",
		"empty name":    "genres:\n  - {id: 1}\n",
		"empty title":   "books:\n  - {id: 1}\n",
		"year range":    "books:\n  - {id: 1, title: a, publication_year: 3000}\n",
		"invalid yaml":  "genres: [",
		"author noname": "authors:\n  - {id: 2, nationality: x}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := fallback.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := fallback.LoadFile("does-not-exist.yaml")
		assert.Error(t, err)
	})
	t.Run("valid file", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "dataset-*.yaml")
		require.NoError(t, err)
		defer os.Remove(tmpFile.Name())
		_, err = tmpFile.WriteString("genres:\n  - {id: 1, name: Poesia, description: Versos}\n")
		require.NoError(t, err)
		tmpFile.Close()

		d, err := fallback.LoadFile(tmpFile.Name())
		require.NoError(t, err)
		assert.Len(t, d.Genres(), 1)
		assert.Empty(t, d.Books())
	})
}

func TestPolicy(t *testing.T) {
	assert.Equal(t, fallback.Always, fallback.NewPolicy("always"))
	assert.Equal(t, fallback.Unreachable, fallback.NewPolicy("unreachable"))
	assert.Error(t, fallback.NewPolicy("sometimes").Validate())
	assert.Equal(t, "unreachable", fallback.Unreachable.String())
}
