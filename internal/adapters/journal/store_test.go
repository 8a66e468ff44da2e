package journal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbreq/internal/adapters/journal"
	"go.trai.ch/nbreq/internal/core/domain"
)

func record(resolver string, at time.Time) domain.LockRecord {
	return domain.LockRecord{
		SessionID:   "s1",
		KernelName:  "ml",
		Resolver:    resolver,
		Fingerprint: "abc123",
		Requested:   2,
		Locked:      7,
		Timestamp:   at,
	}
}

func TestStore_RecordAndEntries(t *testing.T) {
	store, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	entries, err := store.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.Record(record(domain.ResolverThoth, now)))
	require.NoError(t, store.Record(record(domain.ResolverPipenv, now.Add(time.Minute))))

	entries, err = store.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ResolverThoth, entries[0].Resolver)
	assert.Equal(t, domain.ResolverPipenv, entries[1].Resolver)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.json")
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	store, err := journal.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(record(domain.ResolverThoth, now)))

	reopened, err := journal.NewStore(path)
	require.NoError(t, err)

	entries, err := reopened.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, record(domain.ResolverThoth, now), entries[0])
}

func TestStore_EntriesAreCopies(t *testing.T) {
	store, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)
	require.NoError(t, store.Record(record(domain.ResolverThoth, time.Now().UTC())))

	entries, err := store.Entries()
	require.NoError(t, err)
	entries[0].Resolver = "changed"

	again, err := store.Entries()
	require.NoError(t, err)
	assert.Equal(t, domain.ResolverThoth, again[0].Resolver)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := journal.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal lock journal")
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := journal.NewStore(path)
	require.NoError(t, err)

	entries, err := store.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
