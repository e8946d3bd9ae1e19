package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymcycle/internal/workout"
)

const (
	UserAgent               = "gymcycle-bot/1.0"
	DefaultAPIClientTimeout = 15 * time.Second
)

var ErrAPI = errors.New("gymcycle api error")

// CheckinReply is the quick-checkin response, both for a fresh check-in
// and for the "already trained today" rejection.
type CheckinReply struct {
	OK              bool             `json:"ok"`
	Message         string           `json:"message"`
	Session         *workout.Session `json:"session"`
	Date            string           `json:"date"`
	Error           string           `json:"error"`
	ExistingSession string           `json:"existingSession"`
}

// APIClient talks to the gymcycle HTTP API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   DefaultAPIClientTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *APIClient) TodayPlan(ctx context.Context, mode int) (*workout.TodayPlan, error) {
	query := url.Values{}
	query.Set("mode", strconv.Itoa(mode))

	var plan workout.TodayPlan
	if err := c.do(ctx, http.MethodGet, "/today-plan", query, nil, &plan); err != nil {
		return nil, err
	}
	if plan.Session == nil {
		return nil, fmt.Errorf("%w: today-plan without session", ErrAPI)
	}
	return &plan, nil
}

func (c *APIClient) QuickCheckin(ctx context.Context, mode int) (*CheckinReply, error) {
	body := map[string]int{"mode": mode}

	var reply CheckinReply
	err := c.do(ctx, http.MethodPost, "/quick-checkin", nil, body, &reply)
	if err != nil {
		// duplicate check-in comes back as 400 with the existing session
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest && reply.ExistingSession != "" {
			return &reply, nil
		}
		return nil, err
	}
	return &reply, nil
}

func (c *APIClient) MonthSummary(ctx context.Context, month string) (*workout.Summary, error) {
	query := url.Values{}
	query.Set("month", month)

	var summary workout.Summary
	if err := c.do(ctx, http.MethodGet, "/month-summary", query, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *APIClient) LogBodyweight(ctx context.Context, date string, weight float64) error {
	body := workout.BodyweightEntry{
		Date:   date,
		Weight: weight,
	}
	return c.do(ctx, http.MethodPost, "/bodyweight", nil, body, nil)
}

// StatusError is a non 2xx reply from the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrAPI, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrAPI, e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrAPI
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body any, result any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", path, err)
		}
		bodyReader = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("new %s request: %w", path, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil {
			statusErr.Message = errResp.Error
		}
		if result != nil {
			// callers may still want the payload of a rejected request
			_ = json.Unmarshal(respBody, result)
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%s %s: unmarshal: %w", method, path, err)
		}
	}
	return nil
}
