// Package roster fetches student lists from the upstream records service.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"school-transport-backend/models"
)

var ErrNotConfigured = errors.New("student service URL is not configured")

// maxBody caps how much of an upstream response is read.
const maxBody = 4 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StudentsForRoute returns the canonical students riding routeNo, whatever
// payload shape the upstream service answers with.
func (c *Client) StudentsForRoute(ctx context.Context, routeNo string) ([]models.Student, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL + "/students?" + url.Values{"routeNo": {routeNo}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build student request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read student response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("student service returned status %d", resp.StatusCode)
	}

	students, err := models.NormalizeStudents(body)
	if err != nil {
		return nil, err
	}

	// Some upstream shapes ignore the route filter.
	filtered := students[:0]
	for _, s := range students {
		if s.RouteNo == "" || s.RouteNo == routeNo {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}
