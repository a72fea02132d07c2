package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RunComplianceCheck starts a compliance check run and waits for its result.
func (c *Client) RunComplianceCheck(ctx context.Context, workspaceID string, req ComplianceCheckRequest) (*ComplianceCheckRun, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/compliance-checks", c.baseURL, workspaceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compliance check request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build compliance check request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform compliance check API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API compliance check error %d: %s", resp.StatusCode, string(raw))
	}

	var run ComplianceCheckRun
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, fmt.Errorf("failed to decode platform compliance check response: %w", err)
	}
	return &run, nil
}

// SearchDocuments performs a full text search over workspace documents.
func (c *Client) SearchDocuments(ctx context.Context, workspaceID string, req DocumentSearchRequest) ([]Document, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/documents/search", c.baseURL, workspaceID)

	if req.Limit <= 0 {
		req.Limit = defaultListLimit
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build document search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform document search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API document search error %d: %s", resp.StatusCode, string(raw))
	}

	var searchResp struct {
		Documents []Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode platform document search response: %w", err)
	}
	return searchResp.Documents, nil
}

// GenerateReport generates a compliance report and returns its metadata.
func (c *Client) GenerateReport(ctx context.Context, workspaceID string, req GenerateReportRequest) (*Report, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/reports", c.baseURL, workspaceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate report request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generate report request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform report API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API report error %d: %s", resp.StatusCode, string(raw))
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode platform report response: %w", err)
	}
	return &report, nil
}

// AssignTask creates a compliance task, optionally assigned to a member.
func (c *Client) AssignTask(ctx context.Context, workspaceID string, req AssignTaskRequest) (*Task, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/tasks", c.baseURL, workspaceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assign task request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build assign task request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform task API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API task error %d: %s", resp.StatusCode, string(raw))
	}

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode platform task response: %w", err)
	}
	return &task, nil
}

// ResolveIssue marks an issue as resolved.
func (c *Client) ResolveIssue(ctx context.Context, workspaceID, issueID string, req ResolveIssueRequest) (*Issue, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/issues/%s/resolve", c.baseURL, workspaceID, issueID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resolve issue request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build resolve issue request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform resolve issue API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API resolve issue error %d: %s", resp.StatusCode, string(raw))
	}

	var issue Issue
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("failed to decode platform resolve issue response: %w", err)
	}
	return &issue, nil
}

// InviteMember invites a new member to the workspace.
func (c *Client) InviteMember(ctx context.Context, workspaceID string, req InviteMemberRequest) (*Member, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/members/invitations", c.baseURL, workspaceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invite member request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build invite member request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform invite API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API invite error %d: %s", resp.StatusCode, string(raw))
	}

	var member Member
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("failed to decode platform invite response: %w", err)
	}
	return &member, nil
}

// CreateUploadSlot registers a pending document upload and returns its destination.
func (c *Client) CreateUploadSlot(ctx context.Context, workspaceID string, req UploadSlotRequest) (*UploadSlot, error) {
	url := fmt.Sprintf("%s/api/v1/workspaces/%s/documents/uploads", c.baseURL, workspaceID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload slot request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload slot request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform upload slot API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("platform API upload slot error %d: %s", resp.StatusCode, string(raw))
	}

	var slot UploadSlot
	if err := json.NewDecoder(resp.Body).Decode(&slot); err != nil {
		return nil, fmt.Errorf("failed to decode platform upload slot response: %w", err)
	}
	return &slot, nil
}
