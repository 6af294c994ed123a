package remote

import (
	"context"
	"net/http"

	"github.com/marcelsud/library-console/catalog"
)

func (c *Client) ListAuthors(ctx context.Context) ([]catalog.Author, error) {
	var authors []catalog.Author
	if err := c.do(ctx, http.MethodGet, listPath(catalog.Authors), nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (c *Client) GetAuthor(ctx context.Context, id int64) (catalog.Author, error) {
	var a catalog.Author
	if err := c.do(ctx, http.MethodGet, itemPath(catalog.Authors, id), nil, &a); err != nil {
		return catalog.Author{}, err
	}
	return a, nil
}

func (c *Client) CreateAuthor(ctx context.Context, dto catalog.CreateAuthor) (catalog.Author, error) {
	var a catalog.Author
	if err := c.do(ctx, http.MethodPost, listPath(catalog.Authors), dto, &a); err != nil {
		return catalog.Author{}, err
	}
	return a, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id int64, dto catalog.UpdateAuthor) error {
	return c.do(ctx, http.MethodPut, itemPath(catalog.Authors, id), dto, nil)
}

func (c *Client) DeleteAuthor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(catalog.Authors, id), nil, nil)
}
