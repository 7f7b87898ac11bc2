// Package config loads and validates gistkit configuration.
//
// Configuration lives in a YAML or JSON file (the format is chosen by
// file extension) and can be overridden per-field by environment
// variables:
//
//	base_url: https://api.github.com
//	token: ghp_xxx
//	user_agent: gistkit
//	timeout: 30s
//
// Lookup order for the file itself: an explicit path, $GISTKIT_CONFIG,
// then ~/.config/gistkit/config.yaml. A missing file is not an error;
// defaults plus environment variables ($GISTKIT_TOKEN or
// $GITHUB_TOKEN) still produce a usable configuration.
package config
