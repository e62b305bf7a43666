// Package dispatch triggers remote dashboard rebuilds via the GitHub
// repository_dispatch API.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenEnv is the environment variable holding the dispatch access token.
const TokenEnv = "DASHBOARD_DISPATCH_TOKEN"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultAPIBaseURL is the GitHub API endpoint.
const DefaultAPIBaseURL = "https://api.github.com"

// Error represents a failed dispatch request.
type Error struct {
	Repo    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dispatch error for %s: %s: %v", e.Repo, e.Message, e.Cause)
	}
	return fmt.Sprintf("dispatch error for %s: %s", e.Repo, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the dispatch behavior.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults for dispatching.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultAPIBaseURL,
		Timeout: DefaultTimeout,
	}
}

// dispatchPayload is the repository_dispatch request body.
type dispatchPayload struct {
	EventType     string         `json:"event_type"`
	ClientPayload map[string]any `json:"client_payload,omitempty"`
}

// Trigger sends a repository_dispatch event to owner/repo so the remote
// workflow rebuilds and redeploys the dashboard.
func Trigger(ctx context.Context, repo, eventType, token string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if token == "" {
		return &Error{Repo: repo, Message: fmt.Sprintf("access token required (set %s)", TokenEnv)}
	}
	if repo == "" || !strings.Contains(repo, "/") {
		return &Error{Repo: repo, Message: "repository must be in owner/repo form"}
	}
	if eventType == "" {
		return &Error{Repo: repo, Message: "event type is empty"}
	}

	body, err := json.Marshal(dispatchPayload{
		EventType:     eventType,
		ClientPayload: map[string]any{"source": "dashboard-builder"},
	})
	if err != nil {
		return &Error{Repo: repo, Message: "failed to encode payload", Cause: err}
	}

	url := fmt.Sprintf("%s/repos/%s/dispatches", strings.TrimSuffix(opts.BaseURL, "/"), repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &Error{Repo: repo, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return &Error{Repo: repo, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// GitHub answers 204 No Content on success.
	if resp.StatusCode != http.StatusNoContent {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{
			Repo:    repo,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}
	return nil
}
