package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// field.tag -> message shown to the user
var (
	genreMessages = map[string]string{
		"Name.required": "O nome do gênero é obrigatório",
	}
	authorMessages = map[string]string{
		"Name.required": "O nome do autor é obrigatório",
	}
	bookMessages = map[string]string{
		"Title.required":      "O título do livro é obrigatório",
		"Synopsis.required":   "A sinopse do livro é obrigatória",
		"ISBN.required":       "O ISBN do livro é obrigatório",
		"IDAuthor.required":   "Selecione um autor",
		"IDGenre.required":    "Selecione um gênero",
		"PublicationYear.gte": "O ano de publicação deve estar entre 1000 e 2100",
		"PublicationYear.lte": "O ano de publicação deve estar entre 1000 e 2100",
	}
)

// ValidateGenre checks a genre form. Input is expected to be normalized.
func ValidateGenre(d CreateGenre) error {
	return check(d, genreMessages)
}

// ValidateAuthor checks an author form.
func ValidateAuthor(d CreateAuthor) error {
	return check(d, authorMessages)
}

// ValidateBook checks a book form.
func ValidateBook(d CreateBook) error {
	return check(d, bookMessages)
}

// check returns the first failing field, in struct order, as a *ValidationError.
func check(s interface{}, messages map[string]string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating form: %w", err)
	}
	first := fieldErrs[0]
	msg, ok := messages[first.StructField()+"."+first.Tag()]
	if !ok {
		msg = fmt.Sprintf("%s is invalid", first.Field())
	}
	return &ValidationError{Field: first.StructField(), Message: msg}
}
