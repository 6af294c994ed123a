package remote

import (
	"context"
	"net/http"

	"github.com/marcelsud/library-console/catalog"
)

func (c *Client) ListBooks(ctx context.Context) ([]catalog.BookView, error) {
	var books []catalog.BookView
	if err := c.do(ctx, http.MethodGet, listPath(catalog.Books), nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (catalog.BookView, error) {
	var b catalog.BookView
	if err := c.do(ctx, http.MethodGet, itemPath(catalog.Books, id), nil, &b); err != nil {
		return catalog.BookView{}, err
	}
	return b, nil
}

func (c *Client) CreateBook(ctx context.Context, dto catalog.CreateBook) (catalog.Book, error) {
	var b catalog.Book
	if err := c.do(ctx, http.MethodPost, listPath(catalog.Books), dto, &b); err != nil {
		return catalog.Book{}, err
	}
	return b, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, dto catalog.UpdateBook) error {
	return c.do(ctx, http.MethodPut, itemPath(catalog.Books, id), dto, nil)
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(catalog.Books, id), nil, nil)
}
