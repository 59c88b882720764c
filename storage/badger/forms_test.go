package badger

import (
	"context"
	"testing"

	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.FormsRepository {
	t.Helper()
	repo, backend, err := NewMemoryFormsRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestNewFormsRepository_NilBackend(t *testing.T) {
	repo, err := NewFormsRepository(nil)
	assert.ErrorIs(t, err, storage.ErrBackendRequired)
	assert.Nil(t, repo)
}

func TestFormsRepository_PutGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entry := &core.WordForms{Locale: "en", Word: "kitchen", Forms: []string{"kitchen", "kitchens"}}
	require.NoError(t, repo.PutForms(ctx, entry))

	got, err := repo.GetForms(ctx, "en", "kitchen")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	// lookups fold case
	got, err = repo.GetForms(ctx, "en", "Kitchen")
	require.NoError(t, err)
	assert.Equal(t, []string{"kitchen", "kitchens"}, got.Forms)
}

func TestFormsRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetForms(ctx, "en", "sink")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, repo.PutForms(ctx, &core.WordForms{Locale: "en", Word: "sink", Forms: []string{"sinks"}}))
	_, err = repo.GetForms(ctx, "nl", "sink")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFormsRepository_PutReplaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutForms(ctx, &core.WordForms{Locale: "en", Word: "sink", Forms: []string{"sink"}}))
	require.NoError(t, repo.PutForms(ctx, &core.WordForms{Locale: "en", Word: "sink", Forms: []string{"sink", "sinks"}}))

	got, err := repo.GetForms(ctx, "en", "sink")
	require.NoError(t, err)
	assert.Equal(t, []string{"sink", "sinks"}, got.Forms)

	count, err := repo.CountForms(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFormsRepository_PutInvalid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	valid := &core.WordForms{Locale: "en", Word: "sink"}
	err := repo.PutForms(ctx, valid, &core.WordForms{Locale: "en", Word: " "})
	assert.ErrorIs(t, err, core.ErrInvalidWordForms)

	// nothing from the batch was stored
	_, err = repo.GetForms(ctx, "en", "sink")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFormsRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutForms(ctx,
		&core.WordForms{Locale: "en", Word: "kitchen", Forms: []string{"kitchens"}},
		&core.WordForms{Locale: "en", Word: "sink", Forms: []string{"sinks"}},
	))

	require.NoError(t, repo.DeleteForms(ctx, "en", "SINK"))
	_, err := repo.GetForms(ctx, "en", "sink")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteForms(ctx, "en", "kitchen", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// failed batch is rolled back
	_, err = repo.GetForms(ctx, "en", "kitchen")
	assert.NoError(t, err)
}

func TestFormsRepository_Count(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountForms(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.PutForms(ctx,
		&core.WordForms{Locale: "en", Word: "kitchen"},
		&core.WordForms{Locale: "en", Word: "sink"},
		&core.WordForms{Locale: "nl", Word: "keuken"},
	))

	count, err = repo.CountForms(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountForms(ctx, "nl")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFormsRepository_Closed(t *testing.T) {
	repo, backend, err := NewMemoryFormsRepository()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	ctx := context.Background()
	assert.ErrorIs(t, repo.PutForms(ctx, &core.WordForms{Locale: "en", Word: "sink"}), storage.ErrStorageClosed)
	_, err = repo.GetForms(ctx, "en", "sink")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = repo.CountForms(ctx, "en")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, repo.DeleteForms(ctx, "en", "sink"), storage.ErrStorageClosed)
}
