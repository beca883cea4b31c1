package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cristianoliveira/commentview/internal/domain"
	"github.com/cristianoliveira/commentview/internal/logging"
)

// DefaultBaseURL is the public service the comment and user collections come from.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// maxBodySize bounds a single response body.
const maxBodySize = 32 << 20

// HTTPSource fetches collections over HTTP.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource creates a source rooted at baseURL. A zero timeout disables
// the client timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("http source: invalid base url %q: %w", baseURL, err)
	}
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchRecords implements Source.
func (s *HTTPSource) FetchRecords(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	if err := s.getJSON(ctx, CommentsPath, &records); err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// FetchProfile implements Source.
func (s *HTTPSource) FetchProfile(ctx context.Context) (domain.Profile, error) {
	var users []domain.Profile
	if err := s.getJSON(ctx, UsersPath, &users); err != nil {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return firstProfile(users)
}

func (s *HTTPSource) getJSON(ctx context.Context, path string, out any) error {
	endpoint := s.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logging.Warn("source request failed", "url", endpoint, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Warn("source request rejected", "url", endpoint, "status", resp.StatusCode)
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	logging.Debug("source request completed", "url", endpoint, "duration", time.Since(start))
	return nil
}
