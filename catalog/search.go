package catalog

import "strings"

/* Search filters used by the list screens.
 * An empty term keeps everything. Matching is substring-based and case-insensitive,
 * except for the ISBN which is matched as typed.
 */

func FilterBooks(books []BookView, term string) []BookView {
	if term == "" {
		return books
	}
	needle := strings.ToLower(term)
	out := make([]BookView, 0, len(books))
	for _, b := range books {
		if contains(b.Title, needle) || contains(b.AuthorName, needle) || contains(b.GenreName, needle) ||
			(b.ISBN != "" && strings.Contains(b.ISBN, term)) {
			out = append(out, b)
		}
	}
	return out
}

func FilterAuthors(authors []Author, term string) []Author {
	if term == "" {
		return authors
	}
	needle := strings.ToLower(term)
	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		if contains(a.Name, needle) || (a.Nationality != "" && contains(a.Nationality, needle)) {
			out = append(out, a)
		}
	}
	return out
}

func FilterGenres(genres []Genre, term string) []Genre {
	if term == "" {
		return genres
	}
	needle := strings.ToLower(term)
	out := make([]Genre, 0, len(genres))
	for _, g := range genres {
		if contains(g.Name, needle) || contains(g.Description, needle) {
			out = append(out, g)
		}
	}
	return out
}

func contains(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
