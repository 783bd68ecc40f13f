package models

import "time"

// FormRecord is a form definition stored in the local catalog. FormID is the
// reconciliation key: at most one record may exist per FormID.
type FormRecord struct {
	ID      int64  `json:"id"`
	FormID  string `json:"form_id"`
	Version string `json:"version,omitempty"`
	Title   string `json:"title,omitempty"`

	// ContentHash is the md5 hash of the form definition bytes.
	ContentHash string `json:"content_hash"`

	// CachedVersionHash is the composite hash (content hash + manifest hash)
	// recorded by the most recent diff, or empty if no diff has run since the
	// record was written. It lets periodic runs skip per-media-file comparison
	// when the server reports an unchanged composite state.
	CachedVersionHash string `json:"cached_version_hash,omitempty"`

	FilePath  string    `json:"file_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MediaFileRecord is a media asset belonging to exactly one form version.
type MediaFileRecord struct {
	FormID      string `json:"form_id"`
	FormVersion string `json:"form_version,omitempty"`
	Name        string `json:"name"`
	ContentHash string `json:"content_hash"`
	FilePath    string `json:"file_path,omitempty"`
}
