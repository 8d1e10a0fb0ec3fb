package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/jhoicas/Inventario-conciliacion/internal/domain"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

// TokenSource entrega el bearer para el backend; "" omite la cabecera.
type TokenSource interface {
	Token() (string, error)
}

// Options configura el cliente REST.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64 // 0 = sin límite
	Tokens        TokenSource
	HTTPClient    *http.Client
	Logger        *logger.Logger
}

// Client cliente del backend de registro (/api/orders, /api/materials, /api/stockMovements, /api/suppliers).
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	tokens  TokenSource
	log     *logger.Logger
}

// NewClient construye el cliente.
func NewClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		tokens:  opts.Tokens,
		log:     log.Component("backend"),
	}
	if opts.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}
	return c
}

// do ejecuta la petición y decodifica el cuerpo JSON en out (si no es nil).
// Todo fallo encadena domain.ErrBackend; un 404 encadena además domain.ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return eris.Wrap(backendErr(err), "rate limiter wait")
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return eris.Wrapf(backendErr(err), "%s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return eris.Wrap(backendErr(err), "firmar token de servicio")
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrapf(backendErr(err), "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend")

	if resp.StatusCode == http.StatusNotFound {
		return eris.Wrapf(fmt.Errorf("%w: %w", domain.ErrBackend, domain.ErrNotFound), "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return eris.Wrapf(backendErr(fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))), "%s %s", method, path)
	}
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return eris.Wrapf(backendErr(err), "decodificar %s %s", method, path)
	}
	return nil
}

func backendErr(cause error) error {
	return fmt.Errorf("%w: %w", domain.ErrBackend, cause)
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
