package gists

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringerID struct{ v string }

func (s stringerID) String() string { return s.v }

func TestNewID(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
		wantErr  bool
	}{
		{name: "String", input: "abc123", expected: "abc123"},
		{name: "Int", input: 42, expected: "42"},
		{name: "Int8", input: int8(-5), expected: "-5"},
		{name: "Int16", input: int16(300), expected: "300"},
		{name: "Int32", input: int32(70000), expected: "70000"},
		{name: "Int64", input: int64(9000000000), expected: "9000000000"},
		{name: "Uint", input: uint(7), expected: "7"},
		{name: "Uint8", input: uint8(255), expected: "255"},
		{name: "Uint16", input: uint16(65535), expected: "65535"},
		{name: "Uint32", input: uint32(4000000000), expected: "4000000000"},
		{name: "Uint64", input: uint64(18000000000000000000), expected: "18000000000000000000"},
		{name: "Stringer", input: stringerID{"deadbeef"}, expected: "deadbeef"},
		{name: "Existing ID", input: ID("abc"), expected: "abc"},
		{name: "Empty string", input: "", wantErr: true},
		{name: "Unsupported type", input: 3.14, wantErr: true},
		{name: "Nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id.String())
		})
	}
}

func TestID_SegmentEscapesReservedCharacters(t *testing.T) {
	tests := []struct {
		name string
		id   ID
	}{
		{name: "Plain", id: StringID("abc123")},
		{name: "Slash", id: StringID("a/b")},
		{name: "Question mark", id: StringID("a?b=c")},
		{name: "Spaces", id: StringID("a b")},
		{name: "Unicode", id: StringID("héllo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := tt.id.segment()
			// A single segment must round-trip and contain no separators
			decoded, err := url.PathUnescape(seg)
			require.NoError(t, err)
			assert.Equal(t, tt.id.String(), decoded)
			assert.NotContains(t, seg, "/")
			assert.NotContains(t, seg, "?")
			assert.NotContains(t, seg, " ")
		})
	}
}

func TestIntID(t *testing.T) {
	assert.Equal(t, "1234", IntID(1234).String())
}
