package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// do marshals body, issues one API call, and decodes the reply into out
// when out is non-nil. extraOK lists status codes accepted besides 200.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, extraOK ...int) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	ok := resp.StatusCode == http.StatusOK
	for _, code := range extraOK {
		ok = ok || resp.StatusCode == code
	}
	if !ok {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// CreateCollection creates a collection with the given vector config.
// Fresh collections answer 200, some server versions 201; both pass.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	path := fmt.Sprintf("/collections/%s", req.Name)
	return c.do(ctx, http.MethodPut, path, req, nil, http.StatusCreated)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	path := fmt.Sprintf("/collections/%s/points", collectionName)
	return c.do(ctx, http.MethodPut, path, req, nil)
}

// SearchPoints runs a scored vector search over a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	path := fmt.Sprintf("/collections/%s/points/search", collectionName)
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScrollPoints pages through points matching a payload filter, without
// vector scoring. Used for exact retrieval (e.g. all points of a session).
func (c *Client) ScrollPoints(ctx context.Context, collectionName string, req ScrollRequest) (*ScrollResponse, error) {
	path := fmt.Sprintf("/collections/%s/points/scroll", collectionName)
	var result ScrollResponse
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePoints removes points by ID.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	path := fmt.Sprintf("/collections/%s/points/delete", collectionName)
	return c.do(ctx, http.MethodPost, path, DeletePointsRequest{Points: ids}, nil)
}
