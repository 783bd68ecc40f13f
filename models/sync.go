package models

// SyncStatus is the process-wide synchronization state. It is mutated only by
// the sync gate; OutOfSync persists across runs until a pass completes
// successfully.
type SyncStatus struct {
	Syncing   bool `json:"syncing"`
	OutOfSync bool `json:"out_of_sync"`
}
