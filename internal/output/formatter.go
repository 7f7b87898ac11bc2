// Package output renders gists, comments and commits for the
// terminal, with optional JSON and YAML formats for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gistkit/gistkit/gists"
)

// Format represents the available output formats
type Format string

const (
	// FormatText is the default human-readable format
	FormatText Format = "text"
	// FormatJSON emits the raw resource as JSON
	FormatJSON Format = "json"
	// FormatYAML emits the resource as YAML
	FormatYAML Format = "yaml"
)

// Formatter renders API resources for display
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
	format  Format
}

// NewFormatter creates a formatter. Color is disabled when noColor is
// set or stdout is not a terminal.
func NewFormatter(format Format, verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !isTerminal() {
		scheme = NoColorScheme()
	}
	if format == "" {
		format = FormatText
	}
	return &Formatter{
		Verbose: verbose,
		scheme:  scheme,
		format:  format,
	}
}

// FormatGist renders a single gist
func (f *Formatter) FormatGist(gist *gists.Gist) string {
	if s, ok := f.structured(gist); ok {
		return s
	}

	var buf strings.Builder

	buf.WriteString(f.scheme.ID.Sprint(deref(gist.ID)))
	if gist.Public != nil {
		if *gist.Public {
			buf.WriteString("  " + f.scheme.Public.Sprint("public"))
		} else {
			buf.WriteString("  " + f.scheme.Secret.Sprint("secret"))
		}
	}
	buf.WriteString("\n")

	if desc := deref(gist.Description); desc != "" {
		buf.WriteString(fmt.Sprintf("  %s\n", f.scheme.Title.Sprint(desc)))
	}
	if gist.Owner != nil {
		buf.WriteString(fmt.Sprintf("  %s %s\n", f.scheme.Label.Sprint("owner:"), deref(gist.Owner.Login)))
	}

	names := make([]string, 0, len(gist.Files))
	for name := range gist.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		file := gist.Files[name]
		line := fmt.Sprintf("  %s %s", f.scheme.Label.Sprint("file:"), name)
		if file.Size != nil {
			line += fmt.Sprintf(" (%d bytes)", *file.Size)
		}
		if f.Verbose && file.Language != nil {
			line += fmt.Sprintf(" [%s]", *file.Language)
		}
		buf.WriteString(line + "\n")
	}

	if f.Verbose {
		if gist.UpdatedAt != nil {
			buf.WriteString(fmt.Sprintf("  %s %s\n", f.scheme.Label.Sprint("updated:"), f.timestamp(*gist.UpdatedAt)))
		}
		if url := deref(gist.HTMLURL); url != "" {
			buf.WriteString(fmt.Sprintf("  %s %s\n", f.scheme.Label.Sprint("url:"), url))
		}
	}

	return buf.String()
}

// FormatGistList renders a slice of gists, one line each
func (f *Formatter) FormatGistList(items []gists.Gist) string {
	if s, ok := f.structured(items); ok {
		return s
	}

	var buf strings.Builder
	for _, gist := range items {
		desc := deref(gist.Description)
		if desc == "" {
			desc = "(no description)"
		}
		buf.WriteString(fmt.Sprintf("%s  %s", f.scheme.ID.Sprint(deref(gist.ID)), desc))
		if gist.Public != nil && !*gist.Public {
			buf.WriteString("  " + f.scheme.Secret.Sprint("secret"))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// FormatComment renders a single comment
func (f *Formatter) FormatComment(comment *gists.GistComment) string {
	if s, ok := f.structured(comment); ok {
		return s
	}

	var buf strings.Builder
	author := ""
	if comment.User != nil {
		author = deref(comment.User.Login)
	}
	id := ""
	if comment.ID != nil {
		id = fmt.Sprintf("%d", *comment.ID)
	}
	buf.WriteString(fmt.Sprintf("%s  %s", f.scheme.ID.Sprint(id), f.scheme.Label.Sprint(author)))
	if comment.CreatedAt != nil {
		buf.WriteString("  " + f.timestamp(*comment.CreatedAt))
	}
	buf.WriteString("\n")
	buf.WriteString(deref(comment.Body) + "\n")
	return buf.String()
}

// FormatCommentList renders a slice of comments
func (f *Formatter) FormatCommentList(items []gists.GistComment) string {
	if s, ok := f.structured(items); ok {
		return s
	}

	var buf strings.Builder
	for i := range items {
		buf.WriteString(f.FormatComment(&items[i]))
	}
	return buf.String()
}

// FormatCommitList renders a gist's revision history
func (f *Formatter) FormatCommitList(items []gists.GistCommit) string {
	if s, ok := f.structured(items); ok {
		return s
	}

	var buf strings.Builder
	for _, commit := range items {
		buf.WriteString(f.scheme.ID.Sprint(deref(commit.Version)))
		if commit.User != nil {
			buf.WriteString("  " + deref(commit.User.Login))
		}
		if commit.CommittedAt != nil {
			buf.WriteString("  " + f.timestamp(*commit.CommittedAt))
		}
		if cs := commit.ChangeStatus; cs != nil && cs.Additions != nil && cs.Deletions != nil {
			buf.WriteString(fmt.Sprintf("  +%d/-%d", *cs.Additions, *cs.Deletions))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// FormatBool renders a boolean operation result
func (f *Formatter) FormatBool(ok bool, yes, no string) string {
	if ok {
		return f.scheme.Success.Sprint(yes) + "\n"
	}
	return f.scheme.Error.Sprint(no) + "\n"
}

// structured handles the JSON and YAML formats; the second return is
// false for text format
func (f *Formatter) structured(v interface{}) (string, bool) {
	switch f.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("error: %v\n", err), true
		}
		return string(data) + "\n", true
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Sprintf("error: %v\n", err), true
		}
		return string(data), true
	default:
		return "", false
	}
}

func (f *Formatter) timestamp(t time.Time) string {
	return f.scheme.Timestamp.Sprint(t.Format(time.RFC3339))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
