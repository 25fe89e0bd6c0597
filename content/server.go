package content

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// DefaultDeckFile is served when no per-player deck exists
const DefaultDeckFile = "default.json"

// Server serves decks from a directory on the content route
// Lookup order: <email>.json, then default.json, then 404
type Server struct {
	r   *chi.Mux
	dir string
	log zerolog.Logger
}

// NewServer builds the router for dir
func NewServer(dir string, logger zerolog.Logger) *Server {
	s := &Server{
		r:   chi.NewRouter(),
		dir: dir,
		log: logger.With().Str("component", "deck-server").Logger(),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/ai/level2/{email}/get", s.handleDeck)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// Start serves on addr until the listener fails
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Str("dir", s.dir).Msg("deck server listening")
	return http.ListenAndServe(addr, s.r)
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if !validDeckName(email) {
		writeError(w, http.StatusBadRequest, "invalid_email")
		return
	}

	for _, name := range []string{email + ".json", DefaultDeckFile} {
		d, err := s.readDeck(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("deck file rejected")
			writeError(w, http.StatusInternalServerError, "bad_deck")
			return
		}
		d.Email = email
		s.log.Debug().Str("email", email).Str("file", name).Int("cards", len(d.Cards)).Msg("deck served")
		_ = json.NewEncoder(w).Encode(d)
		return
	}

	writeError(w, http.StatusNotFound, "no_deck")
}

func (s *Server) readDeck(name string) (Deck, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return Deck{}, err
	}
	defer f.Close()

	d, err := DecodeDeck(f)
	if err != nil {
		return Deck{}, err
	}
	return d, d.Validate()
}

// validDeckName rejects names that could escape the deck directory
func validDeckName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && !strings.HasPrefix(name, ".")
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
