package api

import "net/http"

// --- Users ---

// User is a single entry of a users-bulk lookup.
type User struct {
	AccountID   string `json:"accountId"`
	PublicName  string `json:"publicName"`
	DisplayName string `json:"displayName,omitempty"`
}

// CurrentUser is the authenticated account behind the configured credentials.
type CurrentUser struct {
	AccountID   string `json:"accountId"`
	PublicName  string `json:"publicName"`
	DisplayName string `json:"displayName,omitempty"`
}

// UsersLookup is the outcome of a users-bulk call. Status is kept so callers
// can decide what a non-200 answer means for them.
type UsersLookup struct {
	Status  int
	Results []User
}

// FirstPublicName returns the first result's public name when the lookup
// succeeded with status 200.
func (u UsersLookup) FirstPublicName() (string, bool) {
	if u.Status != http.StatusOK || len(u.Results) == 0 {
		return "", false
	}
	return u.Results[0].PublicName, true
}

// --- Comments ---

// Comment is a footer comment as returned by the v2 content API.
type Comment struct {
	ID   string       `json:"id,omitempty"`
	Body *CommentBody `json:"body,omitempty"`
}

// CommentBody holds the representations requested for a comment.
type CommentBody struct {
	Plain *BodyValue `json:"plain,omitempty"`
}

// BodyValue is a single body representation.
type BodyValue struct {
	Value string `json:"value"`
}

// PlainText returns the plain body value, or false when it is absent.
func (c Comment) PlainText() (string, bool) {
	if c.Body == nil || c.Body.Plain == nil || c.Body.Plain.Value == "" {
		return "", false
	}
	return c.Body.Plain.Value, true
}

type commentList struct {
	Results []Comment `json:"results"`
}

// --- Page metadata ---

// PageMetadata is the subset of a content record the panel reads.
type PageMetadata struct {
	ID      string       `json:"id,omitempty"`
	Title   string       `json:"title,omitempty"`
	Version *PageVersion `json:"version,omitempty"`
}

// PageVersion describes the latest revision of a page.
type PageVersion struct {
	Number int    `json:"number,omitempty"`
	When   string `json:"when,omitempty"`
}

// LastUpdated returns version.when, or an empty string when absent.
func (m PageMetadata) LastUpdated() string {
	if m.Version == nil {
		return ""
	}
	return m.Version.When
}
