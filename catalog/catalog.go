package catalog

/* Entities mirror the backend's JSON shapes.
 * The console only ever holds cached copies; the backend owns every record.
 */

// Genre is a literary genre.
type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Author is a book author.
type Author struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
}

// Book is the stored book record, as returned by create.
type Book struct {
	ID              int64  `json:"id"`
	IDGenre         int64  `json:"idGenre"`
	IDAuthor        int64  `json:"idAuthor"`
	Title           string `json:"title"`
	Synopsis        string `json:"synopsis,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	Edition         string `json:"edition,omitempty"`
	PublicationYear *int   `json:"publicationYear,omitempty"`
}

// BookView is the read model of a book with its author and genre names resolved.
// It is never sent back as a write payload.
type BookView struct {
	ID              int64  `json:"id"`
	IDGenre         int64  `json:"idGenre"`
	IDAuthor        int64  `json:"idAuthor"`
	Title           string `json:"title"`
	Synopsis        string `json:"synopsis,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	Edition         string `json:"edition,omitempty"`
	PublicationYear *int   `json:"publicationYear,omitempty"`
	CreationDate    string `json:"creationDate,omitempty"`
	UpdateDate      string `json:"updateDate,omitempty"`
	UpdateUser      string `json:"updateUser,omitempty"`
	AuthorName      string `json:"authorName"`
	GenreName       string `json:"genreName"`
}

// Book drops the denormalized fields.
func (v BookView) Book() Book {
	return Book{
		ID:              v.ID,
		IDGenre:         v.IDGenre,
		IDAuthor:        v.IDAuthor,
		Title:           v.Title,
		Synopsis:        v.Synopsis,
		ISBN:            v.ISBN,
		Edition:         v.Edition,
		PublicationYear: v.PublicationYear,
	}
}

// Update returns the full-replace payload holding the current values of b.
func (b Book) Update() UpdateBook {
	return UpdateBook{
		ID: b.ID,
		CreateBook: CreateBook{
			Title:           b.Title,
			Synopsis:        b.Synopsis,
			ISBN:            b.ISBN,
			IDAuthor:        b.IDAuthor,
			IDGenre:         b.IDGenre,
			Edition:         b.Edition,
			PublicationYear: b.PublicationYear,
		},
	}
}

func (a Author) Update() UpdateAuthor {
	return UpdateAuthor{ID: a.ID, CreateAuthor: CreateAuthor{Name: a.Name, Nationality: a.Nationality}}
}

func (g Genre) Update() UpdateGenre {
	return UpdateGenre{ID: g.ID, CreateGenre: CreateGenre{Name: g.Name, Description: g.Description}}
}

// Stats holds the collection sizes shown on the console home page.
type Stats struct {
	Books   int `json:"books"`
	Authors int `json:"authors"`
	Genres  int `json:"genres"`
}
