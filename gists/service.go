package gists

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gistkit/gistkit/http"
)

// Service maps logical gist operations onto resource paths and HTTP
// verbs, delegating execution to the transport. It holds no state
// beyond the client and is safe for concurrent use.
//
// Every operation takes an Options bag; unrecognized keys are
// forwarded verbatim, as query parameters on reads and as JSON body
// fields on writes. A nil bag is fine.
type Service struct {
	client *http.Client
}

// NewService creates a gists service over the given transport client
func NewService(client *http.Client) *Service {
	return &Service{client: client}
}

// Client returns the underlying transport client
func (s *Service) Client() *http.Client {
	return s.client
}

// Get fetches a single gist.
//
// GET gists/{id}
func (s *Service) Get(ctx context.Context, id ID, opts Options) (*Gist, error) {
	var gist Gist
	if err := s.client.Get(ctx, fmt.Sprintf("gists/%s", id.segment()), opts.query(), &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// List returns the authenticated user's gists as a lazy paged
// sequence. The "since" option filters by ISO 8601 timestamp.
//
// GET gists
func (s *Service) List(opts Options) *http.Pages[Gist] {
	return http.PaginateAs[Gist](s.client, "gists", opts.query())
}

// Public returns all public gists as a lazy paged sequence.
//
// GET gists/public
func (s *Service) Public(opts Options) *http.Pages[Gist] {
	return http.PaginateAs[Gist](s.client, "gists/public", opts.query())
}

// Starred returns the authenticated user's starred gists.
//
// GET gists/starred
func (s *Service) Starred(opts Options) *http.Pages[Gist] {
	return http.PaginateAs[Gist](s.client, "gists/starred", opts.query())
}

// ListForUser returns a user's public gists.
//
// GET users/{user}/gists
func (s *Service) ListForUser(user string, opts Options) *http.Pages[Gist] {
	path := fmt.Sprintf("users/%s/gists", url.PathEscape(user))
	return http.PaginateAs[Gist](s.client, path, opts.query())
}

// Create creates a gist from the given files. The files argument is
// layered over any "files" key already present in opts; the caller's
// bag is not modified.
//
// POST gists
func (s *Service) Create(ctx context.Context, files map[string]GistFile, opts Options) (*Gist, error) {
	var gist Gist
	if err := s.client.Post(ctx, "gists", opts.With("files", files), &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// Update edits a gist's description or files.
//
// PATCH gists/{id}
func (s *Service) Update(ctx context.Context, id ID, opts Options) (*Gist, error) {
	var gist Gist
	var body interface{}
	if len(opts) > 0 {
		body = opts
	}
	if err := s.client.Patch(ctx, fmt.Sprintf("gists/%s", id.segment()), body, &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// Delete deletes a gist. A 404 reports false, not an error.
//
// DELETE gists/{id}
func (s *Service) Delete(ctx context.Context, id ID, opts Options) (bool, error) {
	return s.client.Boolean(ctx, "DELETE", fmt.Sprintf("gists/%s", id.segment()), opts.query())
}

// IsStarred reports whether the authenticated user has starred the
// gist. A negative answer is a value, never an error.
//
// GET gists/{id}/star
func (s *Service) IsStarred(ctx context.Context, id ID, opts Options) (bool, error) {
	return s.client.Boolean(ctx, "GET", fmt.Sprintf("gists/%s/star", id.segment()), opts.query())
}

// Star stars a gist.
//
// PUT gists/{id}/star
func (s *Service) Star(ctx context.Context, id ID, opts Options) (bool, error) {
	return s.client.Boolean(ctx, "PUT", fmt.Sprintf("gists/%s/star", id.segment()), opts.query())
}

// Unstar removes a star from a gist.
//
// DELETE gists/{id}/star
func (s *Service) Unstar(ctx context.Context, id ID, opts Options) (bool, error) {
	return s.client.Boolean(ctx, "DELETE", fmt.Sprintf("gists/%s/star", id.segment()), opts.query())
}

// Revision fetches a gist at a specific revision.
//
// GET gists/{id}/{sha}
func (s *Service) Revision(ctx context.Context, id, sha ID, opts Options) (*Gist, error) {
	var gist Gist
	path := fmt.Sprintf("gists/%s/%s", id.segment(), sha.segment())
	if err := s.client.Get(ctx, path, opts.query(), &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// Forks returns the forks of a gist as a lazy paged sequence.
//
// GET gists/{id}/forks
func (s *Service) Forks(id ID, opts Options) *http.Pages[Gist] {
	path := fmt.Sprintf("gists/%s/forks", id.segment())
	return http.PaginateAs[Gist](s.client, path, opts.query())
}

// Fork forks a gist into the authenticated user's account.
//
// POST gists/{id}/forks
func (s *Service) Fork(ctx context.Context, id ID, opts Options) (*Gist, error) {
	var gist Gist
	var body interface{}
	if len(opts) > 0 {
		body = opts
	}
	if err := s.client.Post(ctx, fmt.Sprintf("gists/%s/forks", id.segment()), body, &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// Commits returns a gist's revision history.
//
// GET gists/{id}/commits
func (s *Service) Commits(id ID, opts Options) *http.Pages[GistCommit] {
	path := fmt.Sprintf("gists/%s/commits", id.segment())
	return http.PaginateAs[GistCommit](s.client, path, opts.query())
}

// Comments returns the comments on a gist as a lazy paged sequence.
//
// GET gists/{id}/comments
func (s *Service) Comments(id ID, opts Options) *http.Pages[GistComment] {
	path := fmt.Sprintf("gists/%s/comments", id.segment())
	return http.PaginateAs[GistComment](s.client, path, opts.query())
}

// Comment fetches a single comment on a gist.
//
// GET gists/{id}/comments/{cid}
func (s *Service) Comment(ctx context.Context, id, commentID ID, opts Options) (*GistComment, error) {
	var comment GistComment
	path := fmt.Sprintf("gists/%s/comments/%s", id.segment(), commentID.segment())
	if err := s.client.Get(ctx, path, opts.query(), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateComment adds a comment to a gist. The body argument is
// layered over any "body" key already present in opts.
//
// POST gists/{id}/comments
func (s *Service) CreateComment(ctx context.Context, id ID, body string, opts Options) (*GistComment, error) {
	var comment GistComment
	path := fmt.Sprintf("gists/%s/comments", id.segment())
	if err := s.client.Post(ctx, path, opts.With("body", body), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment edits a comment on a gist.
//
// PATCH gists/{id}/comments/{cid}
func (s *Service) UpdateComment(ctx context.Context, id, commentID ID, body string, opts Options) (*GistComment, error) {
	var comment GistComment
	path := fmt.Sprintf("gists/%s/comments/%s", id.segment(), commentID.segment())
	if err := s.client.Patch(ctx, path, opts.With("body", body), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment deletes a comment from a gist. A 404 reports false,
// not an error.
//
// DELETE gists/{id}/comments/{cid}
func (s *Service) DeleteComment(ctx context.Context, id, commentID ID, opts Options) (bool, error) {
	path := fmt.Sprintf("gists/%s/comments/%s", id.segment(), commentID.segment())
	return s.client.Boolean(ctx, "DELETE", path, opts.query())
}
