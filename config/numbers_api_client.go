package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

var (
	// ErrFunFactTimeout is returned when the numbers API does not answer
	// within the client timeout.
	ErrFunFactTimeout = errors.New("numbers api request timed out")
	// ErrUnexpectedStatus is returned for any non-200 response.
	ErrUnexpectedStatus = errors.New("numbers api returned unexpected status")
	// ErrFunFactMissing is returned when a 200 response carries no text field.
	ErrFunFactMissing = errors.New("numbers api response has no text")
)

type NumbersAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

type numbersAPIResponse struct {
	Text *string `json:"text"`
}

func NewNumbersAPIClient(baseURL string, timeout time.Duration) *NumbersAPIClient {
	return &NumbersAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// MathFact fetches the math trivia for n. No retries are made.
func (c *NumbersAPIClient) MathFact(ctx context.Context, n int64) (string, error) {
	url := c.baseURL + "/" + strconv.FormatInt(n, 10) + "/math?json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build numbers api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrFunFactTimeout, err)
		}
		return "", fmt.Errorf("numbers api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body numbersAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrFunFactTimeout, err)
		}
		return "", fmt.Errorf("failed to decode numbers api response: %w", err)
	}
	if body.Text == nil {
		return "", ErrFunFactMissing
	}

	return *body.Text, nil
}

// CloseIdleConnections releases pooled keep-alive connections.
func (c *NumbersAPIClient) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
