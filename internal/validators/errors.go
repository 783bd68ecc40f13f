package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFormID        = errors.New("form ID is required")
	ErrEmptyContentHash   = errors.New("content hash is required")
	ErrEmptyDownloadURL   = errors.New("download URL is required")
	ErrEmptyMediaFileName = errors.New("media file name is required")
	ErrEmptyMediaFileHash = errors.New("media file hash is required")
)
