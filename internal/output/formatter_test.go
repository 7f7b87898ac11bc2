package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gistkit/gistkit/gists"
)

func sampleGist() *gists.Gist {
	id := "abc123"
	desc := "a greeting"
	public := true
	login := "octocat"
	size := 12
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	url := "https://gist.example.com/abc123"
	return &gists.Gist{
		ID:          &id,
		Description: &desc,
		Public:      &public,
		Owner:       &gists.User{Login: &login},
		Files: map[string]gists.GistFile{
			"hello.txt": {Size: &size},
		},
		UpdatedAt: &updated,
		HTMLURL:   &url,
	}
}

func TestFormatter_FormatGist_Text(t *testing.T) {
	f := NewFormatter(FormatText, false, true)

	out := f.FormatGist(sampleGist())

	for _, want := range []string{"abc123", "public", "a greeting", "octocat", "hello.txt", "12 bytes"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	// Non-verbose output omits the URL
	if strings.Contains(out, "https://gist.example.com") {
		t.Errorf("Expected URL to be omitted without verbose, got:\n%s", out)
	}
}

func TestFormatter_FormatGist_Verbose(t *testing.T) {
	f := NewFormatter(FormatText, true, true)

	out := f.FormatGist(sampleGist())

	if !strings.Contains(out, "https://gist.example.com/abc123") {
		t.Errorf("Expected verbose output to contain URL, got:\n%s", out)
	}
	if !strings.Contains(out, "2024-03-01T12:00:00Z") {
		t.Errorf("Expected verbose output to contain timestamp, got:\n%s", out)
	}
}

func TestFormatter_FormatGist_JSON(t *testing.T) {
	f := NewFormatter(FormatJSON, false, true)

	out := f.FormatGist(sampleGist())

	var decoded gists.Gist
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON output does not parse: %v\n%s", err, out)
	}
	if decoded.ID == nil || *decoded.ID != "abc123" {
		t.Errorf("Unexpected decoded gist: %+v", decoded)
	}
}

func TestFormatter_FormatGistList(t *testing.T) {
	f := NewFormatter(FormatText, false, true)

	id1, id2 := "g1", "g2"
	secret := false
	items := []gists.Gist{
		{ID: &id1},
		{ID: &id2, Public: &secret},
	}

	out := f.FormatGistList(items)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "g1") || !strings.Contains(lines[0], "(no description)") {
		t.Errorf("Unexpected first line: %s", lines[0])
	}
	if !strings.Contains(lines[1], "secret") {
		t.Errorf("Expected secret marker on second line: %s", lines[1])
	}
}

func TestFormatter_FormatBool(t *testing.T) {
	f := NewFormatter(FormatText, false, true)

	if got := f.FormatBool(true, "starred", "not starred"); got != "starred\n" {
		t.Errorf("Unexpected positive output: %q", got)
	}
	if got := f.FormatBool(false, "starred", "not starred"); got != "not starred\n" {
		t.Errorf("Unexpected negative output: %q", got)
	}
}

func TestFormatter_FormatCommitList(t *testing.T) {
	f := NewFormatter(FormatText, false, true)

	version := "deadbeef"
	login := "octocat"
	additions, deletions := 3, 1
	items := []gists.GistCommit{
		{
			Version:      &version,
			User:         &gists.User{Login: &login},
			ChangeStatus: &gists.ChangeStatus{Additions: &additions, Deletions: &deletions},
		},
	}

	out := f.FormatCommitList(items)

	if !strings.Contains(out, "deadbeef") || !strings.Contains(out, "+3/-1") {
		t.Errorf("Unexpected output: %s", out)
	}
}
