package gists

import (
	"fmt"
	"net/url"
	"strconv"
)

// ID is a normalized gist, comment or revision identifier. The API
// treats identifiers as opaque; this type only guarantees a non-empty
// string form that is safe to interpolate into a path.
type ID string

// NewID converts a raw identifier into an ID. Strings and all integer
// kinds are accepted, as is anything implementing fmt.Stringer. An
// empty string or an unsupported type is an error.
func NewID(v interface{}) (ID, error) {
	switch id := v.(type) {
	case ID:
		if id == "" {
			return "", fmt.Errorf("empty identifier")
		}
		return id, nil
	case string:
		if id == "" {
			return "", fmt.Errorf("empty identifier")
		}
		return ID(id), nil
	case int:
		return ID(strconv.Itoa(id)), nil
	case int8:
		return ID(strconv.FormatInt(int64(id), 10)), nil
	case int16:
		return ID(strconv.FormatInt(int64(id), 10)), nil
	case int32:
		return ID(strconv.FormatInt(int64(id), 10)), nil
	case int64:
		return ID(strconv.FormatInt(id, 10)), nil
	case uint:
		return ID(strconv.FormatUint(uint64(id), 10)), nil
	case uint8:
		return ID(strconv.FormatUint(uint64(id), 10)), nil
	case uint16:
		return ID(strconv.FormatUint(uint64(id), 10)), nil
	case uint32:
		return ID(strconv.FormatUint(uint64(id), 10)), nil
	case uint64:
		return ID(strconv.FormatUint(id, 10)), nil
	case fmt.Stringer:
		return NewID(id.String())
	default:
		return "", fmt.Errorf("unsupported identifier type %T", v)
	}
}

// StringID wraps a known-good string identifier without validation
func StringID(s string) ID {
	return ID(s)
}

// IntID wraps an integer identifier
func IntID(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}

// String returns the identifier's string form
func (id ID) String() string {
	return string(id)
}

// segment returns the identifier escaped for use as a single path
// segment, so produced paths never contain unescaped reserved
// characters
func (id ID) segment() string {
	return url.PathEscape(string(id))
}
