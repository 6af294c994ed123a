package remote

import (
	"context"
	"net/http"

	"github.com/marcelsud/library-console/catalog"
)

func (c *Client) ListGenres(ctx context.Context) ([]catalog.Genre, error) {
	var genres []catalog.Genre
	if err := c.do(ctx, http.MethodGet, listPath(catalog.Genres), nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (c *Client) GetGenre(ctx context.Context, id int64) (catalog.Genre, error) {
	var g catalog.Genre
	if err := c.do(ctx, http.MethodGet, itemPath(catalog.Genres, id), nil, &g); err != nil {
		return catalog.Genre{}, err
	}
	return g, nil
}

func (c *Client) CreateGenre(ctx context.Context, dto catalog.CreateGenre) (catalog.Genre, error) {
	var g catalog.Genre
	if err := c.do(ctx, http.MethodPost, listPath(catalog.Genres), dto, &g); err != nil {
		return catalog.Genre{}, err
	}
	return g, nil
}

func (c *Client) UpdateGenre(ctx context.Context, id int64, dto catalog.UpdateGenre) error {
	return c.do(ctx, http.MethodPut, itemPath(catalog.Genres, id), dto, nil)
}

func (c *Client) DeleteGenre(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, itemPath(catalog.Genres, id), nil, nil)
}
