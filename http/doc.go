// Package http provides the shared HTTP transport for the gists API
// client: a configurable client with functional options, a fluent
// request builder, response parsing utilities, typed API errors, and
// lazy Link-header pagination.
//
// Resource packages (see package gists) format paths and delegate all
// network I/O, auth header injection, pagination and deserialization
// to this package.
//
// Basic Usage:
//
//	client := http.NewClient(
//	    http.WithBaseURL("https://api.github.com"),
//	    http.WithToken(os.Getenv("GITHUB_TOKEN")),
//	    http.WithTimeout(30*time.Second),
//	)
//
//	var gist map[string]interface{}
//	if err := client.Get(ctx, "gists/abc123", nil, &gist); err != nil {
//	    log.Fatal(err)
//	}
//
// Pagination:
//
//	it := http.PaginateAs[Item](client, "gists/public", nil)
//	for {
//	    item, ok := it.Next(ctx)
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(item)
//	}
//	if err := it.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Thread Safety:
//
// Client is safe for concurrent use. Multiple goroutines may invoke
// methods on a Client simultaneously. Paginators are not safe for
// concurrent use; create one per goroutine.
package http
