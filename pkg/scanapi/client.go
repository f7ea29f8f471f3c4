package scanapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the meal scanning service. Unauthenticated operations
// hang off the Client; Login returns a Session for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Session is an authenticated client scoped to one bearer token.
type Session struct {
	client *Client
	token  string
}

// Token returns the raw bearer token the session carries.
func (s *Session) Token() string { return s.token }

// NewSessionFromToken wraps an existing bearer token, for callers that
// persisted one from an earlier login.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, name, password string) (*RegisterResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("name", name)
	form.Set("password", password)

	var out RegisterResponse
	if err := c.postForm(ctx, "/v1/auth/register", form, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out TokenResponse
	if err := c.postForm(ctx, "/v1/auth/login", form, "", &out); err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken}, nil
}

// Livez checks the liveness probe.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, "/livez", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz checks the readiness probe, which includes the database.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, "/readyz", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Scan uploads an image plus prompt for analysis.
func (s *Session) Scan(ctx context.Context, prompt, filename string, image io.Reader) (*ScanResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if image != nil {
		part, err := mw.CreateFormFile("image", filename)
		if err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
		if _, err := io.Copy(part, image); err != nil {
			return nil, fmt.Errorf("failed to read image: %w", err)
		}
	}
	if err := mw.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	var out ScanResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/scan", &buf, mw.FormDataContentType(), s.token, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// History lists the caller's scans, oldest first.
func (s *Session) History(ctx context.Context) (*HistoryResponse, error) {
	var out HistoryResponse
	if err := s.client.get(ctx, "/v1/history", s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Feedback submits a feedback entry.
func (s *Session) Feedback(ctx context.Context, text string) (*FeedbackResponse, error) {
	body, err := json.Marshal(map[string]string{"feedback": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var out FeedbackResponse
	err = s.client.do(ctx, http.MethodPost, "/v1/feedback", bytes.NewReader(body), "application/json", s.token, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the caller's profile.
func (s *Session) Profile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.client.get(ctx, "/v1/profile", s.token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfilePicture uploads a new profile picture.
func (s *Session) UpdateProfilePicture(ctx context.Context, filename string, image io.Reader) (*ProfilePictureResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("picture", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	var out ProfilePictureResponse
	err = s.client.do(ctx, http.MethodPut, "/v1/profile/picture", &buf, mw.FormDataContentType(), s.token, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", token, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, token string, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, body, "application/x-www-form-urlencoded", token, out)
}

// do performs the request and decodes either the expected response or
// the APIError the server returned.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType, token string,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = ErrorCodeServerError
			apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
