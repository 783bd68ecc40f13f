// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-sync/internal/adapter"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/mock"
)

// newTestManager — хелпер для создания syncManager с моками и настоящим гейтом
func newTestManager(ctrl *gomock.Controller) (SyncManager, *mock.MockSynchronizer, *mock.MockNotifier, SyncGate) {
	mockSync := mock.NewMockSynchronizer(ctrl)
	mockNotifier := mock.NewMockNotifier(ctrl)
	gate := NewSyncGate()

	manager := NewSyncManager(mockSync, gate, mockNotifier, logger.Nop())
	return manager, mockSync, mockNotifier, gate
}

// ── SyncNow ──────────────────────────────────────────────────────────────────

func TestSyncManager_SyncNow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, mockSync, mockNotifier, _ := newTestManager(ctrl)
	ctx := context.Background()

	mockSync.EXPECT().Synchronize(ctx).Return(nil)
	mockNotifier.EXPECT().OnSyncFailure(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, manager.SyncNow(ctx))

	status := manager.Status()
	assert.False(t, status.Syncing)
	assert.False(t, status.OutOfSync)
}

func TestSyncManager_SyncNow_FailureNotifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, mockSync, mockNotifier, _ := newTestManager(ctrl)
	ctx := context.Background()

	syncErr := &SyncError{Kind: KindAuth, Err: adapter.ErrUnauthorized}
	mockSync.EXPECT().Synchronize(ctx).Return(syncErr)
	mockNotifier.EXPECT().OnSyncFailure(gomock.Any(), syncErr).Times(1)

	err := manager.SyncNow(ctx)

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.True(t, manager.Status().OutOfSync, "failed pass leaves out_of_sync set")
	assert.False(t, manager.Status().Syncing, "gate is released after failure")
}

func TestSyncManager_SyncNow_RejectedWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, mockSync, mockNotifier, gate := newTestManager(ctrl)

	// гейт занят другим проходом: синхронизатор не вызывается вовсе
	require.True(t, gate.TryAcquire())
	mockSync.EXPECT().Synchronize(gomock.Any()).Times(0)
	mockNotifier.EXPECT().OnSyncFailure(gomock.Any(), gomock.Any()).Times(0)

	err := manager.SyncNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

	gate.Release(true)
}

func TestSyncManager_SyncNow_ReleasedAfterRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, mockSync, _, _ := newTestManager(ctrl)
	ctx := context.Background()

	mockSync.EXPECT().Synchronize(ctx).Return(nil).Times(2)

	require.NoError(t, manager.SyncNow(ctx))
	require.NoError(t, manager.SyncNow(ctx), "gate must be free for the next trigger")
}
