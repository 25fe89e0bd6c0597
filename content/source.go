package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// maxDeckBytes bounds a deck response body
const maxDeckBytes = 1 << 20

// Source fetches the deck for one player
type Source interface {
	FetchDeck(ctx context.Context) (Deck, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) (Deck, error)

// FetchDeck calls f
func (f SourceFunc) FetchDeck(ctx context.Context) (Deck, error) { return f(ctx) }

// DeckPath returns the content route for an email
func DeckPath(email string) string {
	return "/ai/level2/" + url.PathEscape(email) + "/get"
}

// HTTPSource reads the deck from the content service
type HTTPSource struct {
	BaseURL string
	Email   string
	Client  *http.Client
}

// NewHTTPSource creates a source with a bounded client timeout
func NewHTTPSource(baseURL, email string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Email:   email,
		Client:  &http.Client{Timeout: timeout},
	}
}

// FetchDeck performs GET {base}/ai/level2/{email}/get
func (s *HTTPSource) FetchDeck(ctx context.Context) (Deck, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+DeckPath(s.Email), nil)
	if err != nil {
		return Deck{}, fmt.Errorf("build deck request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Deck{}, fmt.Errorf("fetch deck: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Deck{}, fmt.Errorf("fetch deck: unexpected status %d", resp.StatusCode)
	}
	return DecodeDeck(io.LimitReader(resp.Body, maxDeckBytes))
}

// FileSource reads the deck from a JSON file on disk
type FileSource struct {
	Path string
}

// FetchDeck reads and decodes Path
func (s FileSource) FetchDeck(ctx context.Context) (Deck, error) {
	if err := ctx.Err(); err != nil {
		return Deck{}, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return Deck{}, fmt.Errorf("open deck file: %w", err)
	}
	defer f.Close()
	return DecodeDeck(f)
}

// DecodeDeck parses a deck document and assigns card IDs
// Unknown fields are ignored, the content service adds its own bookkeeping
func DecodeDeck(r io.Reader) (Deck, error) {
	var raw struct {
		Deck
		Cards *[]Card `json:"cards"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Deck{}, fmt.Errorf("%w: %v", ErrMalformedDeck, err)
	}
	if raw.Cards == nil {
		return Deck{}, fmt.Errorf("%w: missing cards array", ErrMalformedDeck)
	}

	d := raw.Deck
	d.Cards = *raw.Cards
	d.normalize()
	return d, nil
}
