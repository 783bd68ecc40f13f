// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-sync/internal/adapter"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/mock"
	"github.com/MKhiriev/go-form-sync/models"
)

// newTestSynchronizer — хелпер для создания catalogSynchronizer с моками
func newTestSynchronizer(ctrl *gomock.Controller) (Synchronizer, *mock.MockCatalogFetcher, *mock.MockFormDownloader, *mock.MockCatalogRepository) {
	mockFetcher := mock.NewMockCatalogFetcher(ctrl)
	mockDownloader := mock.NewMockFormDownloader(ctrl)
	mockRepo := mock.NewMockCatalogRepository(ctrl)

	sync := NewCatalogSynchronizer(mockFetcher, mockDownloader, mockRepo, logger.Nop())
	return sync, mockFetcher, mockDownloader, mockRepo
}

// ── Synchronize: успешные сценарии ───────────────────────────────────────────

func TestCatalogSynchronizer_Synchronize_NoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, mockDownloader, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	// каталог не изменился: ни удалений, ни загрузок (идемпотентность)
	snapshot := []models.ServerFormDetails{
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "A"}},
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "B"}},
	}
	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(snapshot, nil)
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Return([]models.FormRecord{
		{FormID: "A"}, {FormID: "B"},
	}, nil)

	mockRepo.EXPECT().DeleteForm(gomock.Any(), gomock.Any()).Times(0)
	mockDownloader.EXPECT().DownloadForm(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, sync.Synchronize(ctx))
}

func TestCatalogSynchronizer_Synchronize_DeletesAbsentForms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, _, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	// локально {A, B}, на сервере {A} — B удаляется
	snapshot := []models.ServerFormDetails{
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "A"}},
	}
	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(snapshot, nil)
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Return([]models.FormRecord{
		{FormID: "A"}, {FormID: "B", Version: "1"},
	}, nil)

	mockRepo.EXPECT().GetMediaFiles(gomock.Any(), "B", "1").Return(nil, nil)
	mockRepo.EXPECT().DeleteForm(gomock.Any(), "B").Return(nil)

	require.NoError(t, sync.Synchronize(ctx))
}

func TestCatalogSynchronizer_Synchronize_DownloadsNewAndUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, mockDownloader, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	snapshot := []models.ServerFormDetails{
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "new"}, NotOnDevice: true},
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "updated"}, Updated: true},
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "unchanged"}},
	}
	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(snapshot, nil)
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Return([]models.FormRecord{
		{FormID: "updated"}, {FormID: "unchanged"},
	}, nil)

	mockDownloader.EXPECT().DownloadForm(gomock.Any(), snapshot[0]).Return(nil)
	mockDownloader.EXPECT().DownloadForm(gomock.Any(), snapshot[1]).Return(nil)

	require.NoError(t, sync.Synchronize(ctx))
}

// ── Synchronize: ошибки стадии fetch ─────────────────────────────────────────

func TestCatalogSynchronizer_Synchronize_AuthAbortNoDeletions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, mockDownloader, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	// отказ аутентификации: локальный каталог не читается и не мутируется
	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(nil, adapter.ErrUnauthorized)
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Times(0)
	mockRepo.EXPECT().DeleteForm(gomock.Any(), gomock.Any()).Times(0)
	mockDownloader.EXPECT().DownloadForm(gomock.Any(), gomock.Any()).Times(0)

	err := sync.Synchronize(ctx)

	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestCatalogSynchronizer_Synchronize_TransportErrorIsFetchKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, _, _ := newTestSynchronizer(ctrl)

	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := sync.Synchronize(context.Background())

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, KindFetch, syncErr.Kind)
	assert.Empty(t, syncErr.FailedForms)
}

// ── Synchronize: fail-soft загрузки ──────────────────────────────────────────

func TestCatalogSynchronizer_Synchronize_FailSoftBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, mockDownloader, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	// из двух загрузок одна падает: вторая всё равно выполняется,
	// в конце — один агрегированный FetchError со списком форм
	snapshot := []models.ServerFormDetails{
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "bad"}, NotOnDevice: true},
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "good"}, NotOnDevice: true},
	}
	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(snapshot, nil)
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Return(nil, nil)

	mockDownloader.EXPECT().DownloadForm(gomock.Any(), snapshot[0]).Return(errors.New("503"))
	mockDownloader.EXPECT().DownloadForm(gomock.Any(), snapshot[1]).Return(nil)

	err := sync.Synchronize(ctx)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, KindFetch, syncErr.Kind)
	assert.Equal(t, []string{"bad"}, syncErr.FailedForms)
	assert.ErrorIs(t, err, ErrDownloadFailed)
}

func TestCatalogSynchronizer_Synchronize_DeletionsPrecedeDownloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, mockDownloader, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	snapshot := []models.ServerFormDetails{
		{RemoteFormDescriptor: models.RemoteFormDescriptor{FormID: "new"}, NotOnDevice: true},
	}
	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(snapshot, nil)
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Return([]models.FormRecord{{FormID: "stale"}}, nil)

	// удаление строго до загрузки
	mockRepo.EXPECT().GetMediaFiles(gomock.Any(), "stale", "").Return(nil, nil)
	deleted := mockRepo.EXPECT().DeleteForm(gomock.Any(), "stale").Return(nil)
	mockDownloader.EXPECT().DownloadForm(gomock.Any(), snapshot[0]).Return(nil).After(deleted)

	require.NoError(t, sync.Synchronize(ctx))
}

func TestCatalogSynchronizer_Synchronize_DeleteErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync, mockFetcher, mockDownloader, mockRepo := newTestSynchronizer(ctrl)
	ctx := context.Background()

	mockFetcher.EXPECT().FetchCatalog(gomock.Any()).Return(nil, nil)
	dbErr := errors.New("db locked")
	mockRepo.EXPECT().GetAllForms(gomock.Any()).Return(nil, dbErr)
	mockDownloader.EXPECT().DownloadForm(gomock.Any(), gomock.Any()).Times(0)

	err := sync.Synchronize(ctx)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, KindFetch, syncErr.Kind)
	assert.ErrorIs(t, err, dbErr)
}
