// Package jsonpath extracts values from JSON documents using gjson
// path expressions. It backs the CLI's --extract flag so users can
// pull a single field (e.g. "id" or "files.hello\\.txt.raw_url") out
// of an API response.
package jsonpath

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Extract returns the value at path within the JSON document as a
// string. Arrays and objects come back as their JSON representation.
func Extract(doc string, path string) (string, error) {
	if doc == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty path expression")
	}

	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	if result.IsObject() || result.IsArray() {
		return result.Raw, nil
	}
	return result.String(), nil
}

// ExtractMultiple extracts several named paths from one document.
// Extraction continues past individual failures; the returned error
// aggregates everything that did not resolve.
func ExtractMultiple(doc string, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no path expressions provided")
	}

	results := make(map[string]string, len(paths))
	var firstErr error
	failed := 0
	for name, path := range paths {
		value, err := Extract(doc, path)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		results[name] = value
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d extractions failed: %w", failed, len(paths), firstErr)
	}
	return results, nil
}
