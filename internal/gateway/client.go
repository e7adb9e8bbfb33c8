// Package gateway talks to the remote candidate store over its JSON HTTP API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/shortlist/internal/board"
	"github.com/thenoetrevino/shortlist/internal/models"
	"github.com/thenoetrevino/shortlist/internal/types"
)

// Defaults used when Options leaves a field zero
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 50 * time.Millisecond
)

// Options configures a Client
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int           // attempts per Persist call, at least 1
	BaseDelay  time.Duration // first backoff delay, doubled after each failed attempt
	HTTPClient *http.Client
}

// Client is the HTTP implementation of Gateway and BoardSource
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries int
	baseDelay  time.Duration
}

// NewClient creates a client for the remote store at opts.BaseURL
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		http:       httpClient,
		maxRetries: opts.MaxRetries,
		baseDelay:  opts.BaseDelay,
	}
}

// envelope is the {"data": ...} wrapper of every successful response
type envelope[T any] struct {
	Data T `json:"data"`
}

// errorBody is the {"error": ...} payload of failed responses
type errorBody struct {
	Error string `json:"error"`
}

// ListJobs returns every job
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	var out envelope[[]models.Job]
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return out.Data, nil
}

// GetJob returns a single job
func (c *Client) GetJob(ctx context.Context, jobID types.JobID) (*models.Job, error) {
	var out envelope[models.Job]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get job %d: %w", jobID, err)
	}
	return &out.Data, nil
}

// ListCandidates returns the candidates of a job in no particular order
func (c *Client) ListCandidates(ctx context.Context, jobID types.JobID) ([]models.Candidate, error) {
	var out envelope[[]models.Candidate]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d/candidates", jobID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list candidates of job %d: %w", jobID, err)
	}
	return out.Data, nil
}

// FetchBoard loads a job and its candidates concurrently
func FetchBoard(ctx context.Context, src BoardSource, jobID types.JobID) (*models.Job, []models.Candidate, error) {
	var (
		job        *models.Job
		candidates []models.Candidate
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		job, err = src.GetJob(egCtx, jobID)
		return err
	})
	eg.Go(func() error {
		var err error
		candidates, err = src.ListCandidates(egCtx, jobID)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return job, candidates, nil
}

// Persist sends the intent as a candidate PATCH. Transport failures and 5xx
// answers are retried with exponential backoff; 4xx answers fail at once.
func (c *Client) Persist(ctx context.Context, jobID types.JobID, intent board.Intent) (*models.Candidate, error) {
	path := fmt.Sprintf("/api/jobs/%d/candidates/%d", jobID, intent.ID)
	body := models.CandidateUpdate{Candidate: intent.Candidate()}

	var lastErr *PersistenceError
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		var out envelope[models.Candidate]
		err := c.do(ctx, http.MethodPatch, path, body, &out)
		if err == nil {
			if attempt > 0 {
				slog.Debug("candidate persisted after retry",
					"attempt", attempt+1,
					"job_id", jobID,
					"candidate_id", intent.ID)
			}
			return &out.Data, nil
		}

		lastErr = &PersistenceError{
			JobID:       jobID.ToInt(),
			CandidateID: intent.ID,
			StatusCode:  statusCodeOf(err),
			Err:         err,
		}
		if !lastErr.Retryable() || ctx.Err() != nil {
			break
		}

		// Don't sleep after the last attempt
		if attempt < c.maxRetries-1 {
			// Exponential backoff: 50ms, 100ms, 200ms
			delay := c.baseDelay * (1 << attempt)
			slog.Debug("candidate persist failed, retrying",
				"attempt", attempt+1,
				"max_retries", c.maxRetries,
				"retry_delay", delay,
				"error", err)
			select {
			case <-ctx.Done():
				lastErr.Err = fmt.Errorf("%w (after %v)", ctx.Err(), err)
				return nil, lastErr
			case <-time.After(delay):
			}
		}
	}

	slog.Warn("candidate persist failed",
		"job_id", jobID,
		"candidate_id", intent.ID,
		"status", lastErr.StatusCode,
		"error", lastErr.Err)

	return nil, lastErr
}

// httpStatusError carries the status code of a failed response through do
type httpStatusError struct {
	code int
	err  error
}

func (e *httpStatusError) Error() string { return e.err.Error() }
func (e *httpStatusError) Unwrap() error { return e.err }

func statusCodeOf(err error) int {
	var se *httpStatusError
	if errors.As(err, &se) {
		return se.code
	}
	return 0
}

// do performs one JSON request and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &httpStatusError{code: resp.StatusCode, err: statusError(resp.StatusCode, eb.Error)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &httpStatusError{code: resp.StatusCode, err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	return nil
}
