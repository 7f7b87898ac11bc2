package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Paginator is a lazy, restartable sequence of response pages. No
// request is made until the first call to Next; the cursor for
// subsequent pages comes from the Link header of the previous one.
//
// A Paginator is not safe for concurrent use.
type Paginator struct {
	client  *Client
	path    string
	query   url.Values
	cursor  string
	started bool
	done    bool
	err     error
}

// Paginate creates a paginator over the given path and query
func (c *Client) Paginate(path string, query url.Values) *Paginator {
	return &Paginator{
		client: c,
		path:   path,
		query:  query,
	}
}

// Next fetches the next page and returns its raw body. It returns
// false when the sequence is exhausted or a request failed; check Err
// to distinguish the two.
func (p *Paginator) Next(ctx context.Context) ([]byte, bool) {
	if p.done || p.err != nil {
		return nil, false
	}

	req := NewRequest(http.MethodGet, p.path).WithQuery(p.query)
	if p.started {
		// Cursor URLs from the Link header are absolute and carry
		// their own query string
		req = NewRequest(http.MethodGet, p.cursor)
	}

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		p.err = err
		return nil, false
	}
	if !resp.IsSuccess() {
		p.err = newAPIError(req.Method, req.Path, resp)
		return nil, false
	}

	p.started = true
	p.cursor = resp.NextPage()
	if p.cursor == "" {
		p.done = true
	}
	return resp.Body(), true
}

// Err returns the first error encountered while paging, if any
func (p *Paginator) Err() error {
	return p.err
}

// Restart rewinds the paginator to the first page, clearing any
// error, so the sequence can be consumed again
func (p *Paginator) Restart() {
	p.cursor = ""
	p.started = false
	p.done = false
	p.err = nil
}

// Pages is a typed iterator over a paginated collection. Each page
// body is decoded as a JSON array of T and items are yielded one at
// a time.
type Pages[T any] struct {
	p   *Paginator
	buf []T
	idx int
}

// PaginateAs creates a typed iterator over the given path and query
func PaginateAs[T any](c *Client, path string, query url.Values) *Pages[T] {
	return &Pages[T]{p: c.Paginate(path, query)}
}

// Next returns the next item in the sequence. It returns false when
// the sequence is exhausted or a request failed; check Err.
func (it *Pages[T]) Next(ctx context.Context) (T, bool) {
	var zero T
	for it.idx >= len(it.buf) {
		body, ok := it.p.Next(ctx)
		if !ok {
			return zero, false
		}
		it.buf = it.buf[:0]
		if err := json.Unmarshal(body, &it.buf); err != nil {
			it.p.err = err
			return zero, false
		}
		it.idx = 0
	}
	item := it.buf[it.idx]
	it.idx++
	return item, true
}

// Err returns the first error encountered while iterating, if any
func (it *Pages[T]) Err() error {
	return it.p.Err()
}

// Restart rewinds the iterator to the beginning of the sequence
func (it *Pages[T]) Restart() {
	it.p.Restart()
	it.buf = it.buf[:0]
	it.idx = 0
}

// All drains the remainder of the sequence into a slice
func (it *Pages[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	for {
		item, ok := it.Next(ctx)
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items, it.Err()
}
