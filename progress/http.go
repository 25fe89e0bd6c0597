package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lixenwraith/culture-catch/engine"
)

// UnlockedLevel is the level granted after this game
const UnlockedLevel = 3

// scoreUpdate is the user-progress PATCH body
type scoreUpdate struct {
	Email       string `json:"email"`
	Level2Score int    `json:"level2Score"`
	UserLevel   int    `json:"userLevel"`
}

// HTTPReporter reports the final score to the user-progress service
type HTTPReporter struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPReporter creates a reporter with a bounded client timeout
func NewHTTPReporter(baseURL string, timeout time.Duration) *HTTPReporter {
	return &HTTPReporter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Name implements Sink
func (h *HTTPReporter) Name() string { return "http" }

// Save implements Sink with PATCH {base}/usergame
// Results without an email are skipped; the service keys progress by email
func (h *HTTPReporter) Save(ctx context.Context, r engine.Result) error {
	if r.Email == "" {
		return nil
	}

	body, err := json.Marshal(scoreUpdate{
		Email:       r.Email,
		Level2Score: r.FinalScore,
		UserLevel:   UnlockedLevel,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, h.BaseURL+"/usergame", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build progress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("report progress: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("report progress: unexpected status %d", resp.StatusCode)
	}
	return nil
}
