package service

import (
	"github.com/MKhiriev/go-form-sync/internal/adapter"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/store"
)

// Services bundles the synchronization engine's components wired together.
type Services struct {
	Differ       CatalogDiffer
	Fetcher      CatalogFetcher
	Downloader   FormDownloader
	Synchronizer Synchronizer
	Gate         SyncGate
	Manager      SyncManager
	Job          SyncJob
}

// NewServices wires the full engine on top of the local catalog storages and
// the remote form server adapter. formsDir is where downloaded form and media
// files are written.
func NewServices(storages *store.CatalogStorages, server adapter.FormServer, notifier Notifier, formsDir string, log *logger.Logger) *Services {
	differ := NewCatalogDiffer(storages.Forms)
	fetcher := NewServerFormsFetcher(server, storages.Forms, differ)
	downloader := NewFormDownloader(server, storages.Forms, formsDir)
	synchronizer := NewCatalogSynchronizer(fetcher, downloader, storages.Forms, log)
	gate := NewSyncGate()
	manager := NewSyncManager(synchronizer, gate, notifier, log)

	return &Services{
		Differ:       differ,
		Fetcher:      fetcher,
		Downloader:   downloader,
		Synchronizer: synchronizer,
		Gate:         gate,
		Manager:      manager,
		Job:          NewSyncJob(manager),
	}
}
