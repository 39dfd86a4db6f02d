package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestStore_BoxSnapshot(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	_, found, err := store.LoadBoxSnapshot()
	require.NoError(t, err)
	assert.False(t, found)

	snapshot := entities.Boxes{
		1: entities.NewEmptyBox(1),
		2: {
			Number: 2,
			Name:   "photo.jpg",
			Size:   1234567,
			Type:   "Image (JPEG)",
			Source: &entities.BoxSource{Name: "Central Library", City: "Portland"},
		},
	}
	require.NoError(t, store.SaveBoxSnapshot(snapshot))

	loaded, found, err := store.LoadBoxSnapshot()
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, snapshot.Equal(loaded))
}

func TestStore_InstallReport(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	startedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	report := entities.NewInstallReport("nm-shared", startedAt)
	report.CompletedSteps = append(report.CompletedSteps, entities.StepPackages.String())
	report.StepDurations[entities.StepPackages.String()] = entities.Duration(1500 * time.Millisecond)
	report.ErrorStep = entities.StepAPProfile.String()
	report.Error = "exit status 10"
	report.ExecFinished = true

	require.NoError(t, store.SaveInstallReport(report))

	loaded, found, err := store.LoadInstallReport()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, report.Variant, loaded.Variant)
	assert.True(t, report.StartedAt.Equal(loaded.StartedAt))
	assert.Equal(t, report.CompletedSteps, loaded.CompletedSteps)
	assert.Equal(t, report.StepDurations, loaded.StepDurations)
	assert.Equal(t, report.ErrorStep, loaded.ErrorStep)
	assert.False(t, loaded.Succeeded())
}
