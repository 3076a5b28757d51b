// Package client talks to the lesson planner HTTP API and keeps the
// signed-in user in an explicit Session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/rohits-web03/lessonplanner/internal/api/dto"
	"github.com/rohits-web03/lessonplanner/internal/models"
)

const genericFailure = "Something went wrong. Please try again."

// ErrNotLoggedIn is returned by calls that need a session when there is none.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a failed API call. Message is the server's message when it
// sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

// WithTimeout bounds each request. Plan generation waits on the provider, so
// keep it above the server's provider timeout. A client passed to
// WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 90 * time.Second},
		session: NewSession(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) Register(ctx context.Context, email, password string) (*SessionUser, error) {
	return c.authenticate(ctx, "/api/register", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) (*SessionUser, error) {
	return c.authenticate(ctx, "/api/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*SessionUser, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, path, dto.Credentials{Email: email, Password: password}, &out, false); err != nil {
		return nil, err
	}
	c.session.Set(SessionUser{ID: out.UserID, Email: email, Token: out.Token, ExpiresAt: out.ExpiresAt})
	return c.session.Current(), nil
}

// Logout clears the session even when the server cannot be reached.
func (c *Client) Logout(ctx context.Context) error {
	defer c.session.Clear()
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil, false)
}

func (c *Client) GeneratePlan(ctx context.Context, grade, subject, topic string) (*dto.GeneratePlanResponse, error) {
	user := c.session.Current()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	in := dto.GeneratePlanRequest{UserID: dto.FlexID(user.ID), Grade: grade, Subject: subject, Topic: topic}
	var out dto.GeneratePlanResponse
	if err := c.do(ctx, http.MethodPost, "/api/generate-plan", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) History(ctx context.Context) ([]models.PlanSummary, error) {
	var out dto.HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/plans/history", nil, &out, true); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *Client) Plan(ctx context.Context, planID uint) (*models.LessonPlan, error) {
	var out dto.PlanResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/plans/%d", planID), nil, &out, true); err != nil {
		return nil, err
	}
	if out.Plan == nil {
		return nil, &APIError{Status: http.StatusOK, Message: genericFailure}
	}
	return out.Plan, nil
}

func (c *Client) Templates(ctx context.Context) ([]models.Template, error) {
	var out dto.TemplatesResponse
	if err := c.do(ctx, http.MethodGet, "/api/templates", nil, &out, false); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

func (c *Client) ExportPlan(ctx context.Context, planID uint) (*dto.ExportResponse, error) {
	var out dto.ExportResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/plans/%d/export", planID), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends one request. When auth is set the session token goes in the
// Authorization header, and a 401 ends the session.
func (c *Client) do(ctx context.Context, method, path string, in, out any, auth bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if auth {
		user := c.session.Current()
		if user == nil {
			return ErrNotLoggedIn
		}
		req.Header.Set("Authorization", "Bearer "+user.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if auth && resp.StatusCode == http.StatusUnauthorized {
			c.session.Clear()
		}
		return &APIError{Status: resp.StatusCode, Message: failureMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: genericFailure}
	}
	return nil
}

func failureMessage(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return genericFailure
	}
	msg := gjson.GetBytes(raw, "message")
	if msg.Type != gjson.String || strings.TrimSpace(msg.String()) == "" {
		return genericFailure
	}
	return msg.String()
}
