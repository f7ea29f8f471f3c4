package scanapi

import "time"

// TokenResponse is returned by POST /v1/auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// RegisterResponse is returned by POST /v1/auth/register.
type RegisterResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ScanResponse is returned by POST /v1/scan.
type ScanResponse struct {
	ID        int64     `json:"id"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is a single stored scan in a history listing.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse is returned by GET /v1/history. Scans are ordered
// oldest first and the slice is present even when empty.
type HistoryResponse struct {
	Scans []HistoryEntry `json:"scans"`
}

// FeedbackResponse is returned by POST /v1/feedback.
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is returned by GET /v1/profile. ProfilePicture always
// holds a usable reference; accounts that never uploaded one get the
// default picture.
type ProfileResponse struct {
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// ProfilePictureResponse is returned by PUT /v1/profile/picture.
type ProfilePictureResponse struct {
	ProfilePicture string `json:"profile_picture"`
}

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
