package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/marcelsud/library-console/catalog"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "http://localhost:5070/api/v1"

/* Client talks to the catalog REST backend and implements catalog.Repository.
 * Every failure is classified into a catalog.APIError and logged with its URL.
 */
var _ catalog.Repository = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables the limit.
func WithRateLimit(rps float64) Option {
	return func(cl *Client) {
		if rps > 0 {
			cl.limiter = rate.NewLimiter(rate.Every(time.Duration(float64(time.Second)/rps)), 1)
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: NewHTTPClient(),
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root every path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type errorBody struct {
	Message string `json:"message"`
}

// do sends one request. body, when not nil, is JSON-encoded; target, when not nil,
// receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	url := c.baseURL + path
	err := c.send(ctx, method, url, body, target)
	if err != nil && !isContextErr(err) {
		c.logger.Error().Err(err).Str("method", method).Str("url", url).Msg("API request failed")
	}
	return err
}

func (c *Client) send(ctx context.Context, method, url string, body, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, RequestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		apiErr := catalog.UnreachableError(c.baseURL, err)
		apiErr.Method, apiErr.URL = method, url
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp, method, url)
	}
	if resp.StatusCode == http.StatusNoContent || target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &catalog.APIError{
			Kind:       catalog.ErrHTTP,
			StatusCode: resp.StatusCode,
			Message:    "Resposta inválida da API",
			Method:     method,
			URL:        url,
			Err:        fmt.Errorf("decoding response: %w", err),
		}
	}
	return nil
}

// classify maps a non-2xx response to a typed failure
func classify(resp *http.Response, method, url string) error {
	apiErr := &catalog.APIError{StatusCode: resp.StatusCode, Method: method, URL: url}
	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.Kind = catalog.ErrNotFound
		apiErr.Message = "Recurso não encontrado"
	case http.StatusBadRequest:
		apiErr.Kind = catalog.ErrInvalid
		apiErr.Message = "Dados inválidos"
		var body errorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			apiErr.Message = body.Message
		}
	default:
		apiErr.Kind = catalog.ErrHTTP
		apiErr.Message = "Erro HTTP: " + strconv.Itoa(resp.StatusCode)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return apiErr
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func itemPath(kind catalog.Kind, id int64) string {
	return "/" + kind.String() + "/" + strconv.FormatInt(id, 10)
}

func listPath(kind catalog.Kind) string {
	return "/" + kind.String()
}
