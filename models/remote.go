package models

// RemoteFormDescriptor is one entry of the remote form list. Produced fresh on
// every fetch and immutable within a reconciliation pass.
type RemoteFormDescriptor struct {
	FormID  string `json:"form_id"`
	Version string `json:"version,omitempty"`

	// Hash is the server-reported content hash. The wire value may carry an
	// "md5:" prefix; compare it through utils.NormalizeHash.
	Hash string `json:"hash"`

	Title       string `json:"title,omitempty"`
	DownloadURL string `json:"download_url"`

	// ManifestURL is empty for forms without media files.
	ManifestURL string `json:"manifest_url,omitempty"`
}

// ManifestSnapshot is a form's media manifest, fetched lazily only when the
// descriptor carries a manifest URL.
type ManifestSnapshot struct {
	Hash       string              `json:"hash"`
	MediaFiles []ManifestMediaFile `json:"media_files"`
}

// ManifestMediaFile is one media entry of a manifest.
type ManifestMediaFile struct {
	Name        string `json:"name"`
	Hash        string `json:"hash"`
	DownloadURL string `json:"download_url"`
}

// ServerFormDetails is the unit the synchronizer consumes: a remote descriptor
// annotated with its manifest and the diff outcome against the local catalog.
// It is never persisted.
type ServerFormDetails struct {
	RemoteFormDescriptor

	Manifest *ManifestSnapshot

	// NotOnDevice is true when no local record exists for the form.
	NotOnDevice bool

	// Updated is true when the local copy differs from the server's, either in
	// form content or in any media file.
	Updated bool
}
