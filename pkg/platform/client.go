package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the compliance platform REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new compliance platform HTTP client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

var _ IPlatform = (*Client)(nil)

// GetOverview fetches the workspace compliance summary.
func (c *Client) GetOverview(ctx context.Context, workspaceID string) (*Overview, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/overview", c.baseURL, workspaceID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build overview request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform overview API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API overview error %d: %s", resp.StatusCode, string(raw))
	}

	var overview Overview
	if err := json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		return nil, fmt.Errorf("failed to decode platform overview response: %w", err)
	}
	return &overview, nil
}

// ListIssues lists workspace issues, optionally filtered by status, severity, and framework.
func (c *Client) ListIssues(ctx context.Context, workspaceID string, q IssueQuery) ([]Issue, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/issues?limit=%d", c.baseURL, workspaceID, limit)
	if q.Status != "" {
		url += fmt.Sprintf("&status=%s", q.Status)
	}
	if q.Severity != "" {
		url += fmt.Sprintf("&severity=%s", q.Severity)
	}
	if q.Framework != "" {
		url += fmt.Sprintf("&framework=%s", q.Framework)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list issues request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform issues API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API issues error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Issues []Issue `json:"issues"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode platform issues response: %w", err)
	}
	return listResp.Issues, nil
}

// ListDocuments lists workspace documents, optionally filtered by status and framework.
func (c *Client) ListDocuments(ctx context.Context, workspaceID string, q DocumentQuery) ([]Document, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/documents?limit=%d", c.baseURL, workspaceID, limit)
	if q.Status != "" {
		url += fmt.Sprintf("&status=%s", q.Status)
	}
	if q.Framework != "" {
		url += fmt.Sprintf("&framework=%s", q.Framework)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list documents request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform documents API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API documents error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Documents []Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode platform documents response: %w", err)
	}
	return listResp.Documents, nil
}

// ListDeadlines lists upcoming compliance deadlines within the given window.
func (c *Client) ListDeadlines(ctx context.Context, workspaceID string, withinDays int) ([]Deadline, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/deadlines", c.baseURL, workspaceID)
	if withinDays > 0 {
		url += fmt.Sprintf("?within_days=%d", withinDays)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list deadlines request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform deadlines API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API deadlines error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Deadlines []Deadline `json:"deadlines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode platform deadlines response: %w", err)
	}
	return listResp.Deadlines, nil
}

// ListMembers lists workspace members.
func (c *Client) ListMembers(ctx context.Context, workspaceID string) ([]Member, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/members", c.baseURL, workspaceID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list members request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform members API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API members error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Members []Member `json:"members"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode platform members response: %w", err)
	}
	return listResp.Members, nil
}

// GetAnalytics fetches the workspace analytics summary for a period like "30d".
func (c *Client) GetAnalytics(ctx context.Context, workspaceID string, period string) (*Analytics, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/analytics", c.baseURL, workspaceID)
	if period != "" {
		url += fmt.Sprintf("?period=%s", period)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build analytics request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform analytics API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API analytics error %d: %s", resp.StatusCode, string(raw))
	}

	var analytics Analytics
	if err := json.NewDecoder(resp.Body).Decode(&analytics); err != nil {
		return nil, fmt.Errorf("failed to decode platform analytics response: %w", err)
	}
	return &analytics, nil
}

// GetTrends fetches the compliance score trend over the given number of months.
func (c *Client) GetTrends(ctx context.Context, workspaceID string, months int) (*TrendReport, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/trends", c.baseURL, workspaceID)
	if months > 0 {
		url += fmt.Sprintf("?months=%d", months)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build trends request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform trends API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API trends error %d: %s", resp.StatusCode, string(raw))
	}

	var trends TrendReport
	if err := json.NewDecoder(resp.Body).Decode(&trends); err != nil {
		return nil, fmt.Errorf("failed to decode platform trends response: %w", err)
	}
	return &trends, nil
}
