package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"harulog/internal/domain"
)

// ErrUnauthorized is returned on a 401 response. The surrounding app treats
// it as a signal to clear credentials; the tracker itself just surfaces it.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to the remote day-session REST API with bearer-token auth.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an API client. baseURL is the server root, e.g.
// "http://localhost:8787"; the "/api/day-sessions" prefix is added here.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// GetDay fetches the timeline for a date.
func (c *Client) GetDay(ctx context.Context, date string) (domain.DayRecord, error) {
	var dto dayRecordDTO
	if err := c.do(ctx, http.MethodGet, "/api/day-sessions/"+date, nil, &dto); err != nil {
		return domain.DayRecord{}, err
	}
	return fromRecordDTO(dto), nil
}

// ReplaceDay full-replaces the timeline for a date. An empty slice clears
// the day.
func (c *Client) ReplaceDay(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
	body := dayRecordUpdateDTO{Date: date, Sessions: make([]sessionDTO, 0, len(sessions))}
	for _, s := range sessions {
		dto := toDTO(date, s)
		dto.ID = "" // ids are server-assigned on bulk replace
		body.Sessions = append(body.Sessions, dto)
	}

	var dto dayRecordDTO
	if err := c.do(ctx, http.MethodPut, "/api/day-sessions/bulk/"+date, body, &dto); err != nil {
		return domain.DayRecord{}, err
	}
	return fromRecordDTO(dto), nil
}

// CreateSession stores a single new session.
func (c *Client) CreateSession(ctx context.Context, date string, session domain.Session) (domain.Session, error) {
	body := toDTO(date, session)
	body.ID = ""

	var dto sessionDTO
	if err := c.do(ctx, http.MethodPost, "/api/day-sessions", body, &dto); err != nil {
		return domain.Session{}, err
	}
	return fromDTO(dto), nil
}

// UpdateSession updates a single session by id.
func (c *Client) UpdateSession(ctx context.Context, id string, session domain.Session) (domain.Session, error) {
	body := toDTO("", session)
	body.ID = ""

	var dto sessionDTO
	if err := c.do(ctx, http.MethodPut, "/api/day-sessions/"+id, body, &dto); err != nil {
		return domain.Session{}, err
	}
	return fromDTO(dto), nil
}

// DeleteSession removes a single session by id.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/day-sessions/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorDTO
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Detail != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Detail)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
