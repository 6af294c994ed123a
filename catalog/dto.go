package catalog

import "strings"

/* DTOs are the exact field sets the console may send.
 * Create* carry no id; Update* carry the id plus the full Create field set.
 * Field order is the form order, so the first validation failure matches the form.
 */

type CreateGenre struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateGenre struct {
	ID int64 `json:"id"`
	CreateGenre
}

type CreateAuthor struct {
	Name        string `json:"name" validate:"required"`
	Nationality string `json:"nationality,omitempty"`
}

type UpdateAuthor struct {
	ID int64 `json:"id"`
	CreateAuthor
}

type CreateBook struct {
	Title           string `json:"title" validate:"required"`
	Synopsis        string `json:"synopsis,omitempty" validate:"required"`
	ISBN            string `json:"isbn,omitempty" validate:"required"`
	IDAuthor        int64  `json:"idAuthor" validate:"required"`
	IDGenre         int64  `json:"idGenre" validate:"required"`
	Edition         string `json:"edition,omitempty"`
	PublicationYear *int   `json:"publicationYear,omitempty" validate:"omitempty,gte=1000,lte=2100"`
}

type UpdateBook struct {
	ID int64 `json:"id"`
	CreateBook
}

// Normalize trims every text field.
func (d CreateGenre) Normalize() CreateGenre {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	return d
}

func (d CreateAuthor) Normalize() CreateAuthor {
	d.Name = strings.TrimSpace(d.Name)
	d.Nationality = strings.TrimSpace(d.Nationality)
	return d
}

func (d CreateBook) Normalize() CreateBook {
	d.Title = strings.TrimSpace(d.Title)
	d.Synopsis = strings.TrimSpace(d.Synopsis)
	d.ISBN = strings.TrimSpace(d.ISBN)
	d.Edition = strings.TrimSpace(d.Edition)
	return d
}
