package gists

import "time"

// Gist represents a hosted snippet with one or more named files
type Gist struct {
	ID          *string             `json:"id,omitempty"`
	Description *string             `json:"description,omitempty"`
	Public      *bool               `json:"public,omitempty"`
	Owner       *User               `json:"owner,omitempty"`
	Files       map[string]GistFile `json:"files,omitempty"`
	Comments    *int                `json:"comments,omitempty"`
	HTMLURL     *string             `json:"html_url,omitempty"`
	GitPullURL  *string             `json:"git_pull_url,omitempty"`
	GitPushURL  *string             `json:"git_push_url,omitempty"`
	CreatedAt   *time.Time          `json:"created_at,omitempty"`
	UpdatedAt   *time.Time          `json:"updated_at,omitempty"`
	NodeID      *string             `json:"node_id,omitempty"`
}

// GistFile represents a single file inside a gist
type GistFile struct {
	Filename  *string `json:"filename,omitempty"`
	Type      *string `json:"type,omitempty"`
	Language  *string `json:"language,omitempty"`
	Size      *int    `json:"size,omitempty"`
	RawURL    *string `json:"raw_url,omitempty"`
	Truncated *bool   `json:"truncated,omitempty"`
	Content   *string `json:"content,omitempty"`
}

// GistComment represents a comment on a gist
type GistComment struct {
	ID        *int64     `json:"id,omitempty"`
	Body      *string    `json:"body,omitempty"`
	User      *User      `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GistCommit represents an entry in a gist's revision history
type GistCommit struct {
	Version      *string       `json:"version,omitempty"`
	User         *User         `json:"user,omitempty"`
	ChangeStatus *ChangeStatus `json:"change_status,omitempty"`
	CommittedAt  *time.Time    `json:"committed_at,omitempty"`
	URL          *string       `json:"url,omitempty"`
}

// ChangeStatus summarizes the line delta of a gist revision
type ChangeStatus struct {
	Total     *int `json:"total,omitempty"`
	Additions *int `json:"additions,omitempty"`
	Deletions *int `json:"deletions,omitempty"`
}

// User represents the owner of a gist or the author of a comment
type User struct {
	Login     *string `json:"login,omitempty"`
	ID        *int64  `json:"id,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	HTMLURL   *string `json:"html_url,omitempty"`
	Type      *string `json:"type,omitempty"`
}
