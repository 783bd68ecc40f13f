package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// ContentHash returns the lowercase hex md5 digest of data. It is the hash the
// form server reports for form definitions and media files.
func ContentHash(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// ReaderHash computes the md5 digest of everything readable from r. Used for
// hashing media files already on disk without loading them into memory.
func ReaderHash(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("error hashing reader contents: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VersionHash combines a form's content hash and its manifest hash into the
// composite cache key used to short-circuit media-file comparison. Forms
// without a manifest contribute an empty manifest hash.
func VersionHash(contentHash, manifestHash string) string {
	return ContentHash([]byte(contentHash + manifestHash))
}

// NormalizeHash strips the optional "md5:" prefix some servers prepend to
// reported hashes and lowercases the digest so hashes from different sources
// compare equal.
func NormalizeHash(hash string) string {
	hash = strings.TrimSpace(hash)
	hash = strings.TrimPrefix(hash, "md5:")
	return strings.ToLower(hash)
}
