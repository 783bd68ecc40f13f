package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash_KnownDigest(t *testing.T) {
	// md5("blah")
	assert.Equal(t, "6f1ed002ab5595859014ebf0951522d9", ContentHash([]byte("blah")))
}

func TestContentHash_EmptyInput(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ContentHash(nil))
}

func TestReaderHash_MatchesContentHash(t *testing.T) {
	data := []byte("some media file contents")

	got, err := ReaderHash(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, ContentHash(data), got)
}

func TestVersionHash_CombinesContentAndManifestHash(t *testing.T) {
	withManifest := VersionHash("content-hash", "manifest-hash")
	withoutManifest := VersionHash("content-hash", "")

	assert.Equal(t, ContentHash([]byte("content-hashmanifest-hash")), withManifest)
	assert.Equal(t, ContentHash([]byte("content-hash")), withoutManifest)
	assert.NotEqual(t, withManifest, withoutManifest)
}

func TestNormalizeHash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "md5 prefix stripped", in: "md5:abcdef0123", want: "abcdef0123"},
		{name: "no prefix untouched", in: "abcdef0123", want: "abcdef0123"},
		{name: "uppercase lowered", in: "md5:ABCDEF0123", want: "abcdef0123"},
		{name: "surrounding whitespace trimmed", in: "  md5:abc  ", want: "abc"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHash(tt.in))
		})
	}
}
