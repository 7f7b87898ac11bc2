// Package gists is the resource surface of the client: each method
// formats a relative resource path, merges caller options with any
// injected fields, and delegates execution to the shared transport
// (package http) which owns auth, network I/O, pagination and JSON
// deserialization.
//
// The package is stateless; a Service holds nothing but the transport
// client and every call is independent.
//
// Basic Usage:
//
//	client := http.NewClient(
//	    http.WithBaseURL("https://api.github.com"),
//	    http.WithToken(token),
//	)
//	svc := gists.NewService(client)
//
//	gist, err := svc.Get(ctx, gists.StringID("abc123"), nil)
//
//	it := svc.Public(gists.Options{"since": "2024-01-01T00:00:00Z"})
//	for {
//	    g, ok := it.Next(ctx)
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(*g.ID)
//	}
//
// Boolean operations (Star, Unstar, IsStarred, Delete, DeleteComment)
// report a negative HTTP status as false rather than as an error, so
// "not starred" is a value, not a failure.
package gists
