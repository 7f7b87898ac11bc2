package gists

import (
	"fmt"
	"net/url"
)

// Options is a loose bag of request parameters. Recognized keys
// ("since", "description", "public", "files", "body") have API
// meaning; everything else is forwarded verbatim to the transport.
// For read operations options become query parameters, for write
// operations they become the JSON body.
//
// Options values are never mutated by this package: injected fields
// are layered onto a fresh copy, so callers may reuse one Options
// across calls.
type Options map[string]interface{}

// With returns a copy of o with key set to value. A nil receiver is
// treated as empty.
func (o Options) With(key string, value interface{}) Options {
	merged := make(Options, len(o)+1)
	for k, v := range o {
		merged[k] = v
	}
	merged[key] = value
	return merged
}

// Merge returns a copy of o with every key of other layered on top
func (o Options) Merge(other Options) Options {
	merged := make(Options, len(o)+len(other))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// query renders the options as URL query parameters. Values are
// stringified with their natural formatting; url.Values handles
// escaping and produces deterministic key order on encode.
func (o Options) query() url.Values {
	if len(o) == 0 {
		return nil
	}
	query := make(url.Values, len(o))
	for k, v := range o {
		switch value := v.(type) {
		case string:
			query.Set(k, value)
		case fmt.Stringer:
			query.Set(k, value.String())
		default:
			query.Set(k, fmt.Sprintf("%v", value))
		}
	}
	return query
}
