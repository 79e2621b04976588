package benchmark

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore initializes either store implementation against a temp dir.
func setupStore(t *testing.T, backend string) Store {
	t.Helper()

	dir := t.TempDir()
	var store Store
	var err error

	switch backend {
	case "json":
		store, err = NewFileStore(filepath.Join(dir, "history.json"))
	case "sqlite":
		store, err = NewSQLiteStore(filepath.Join(dir, "history.db"))
	default:
		t.Fatalf("unknown backend %q", backend)
	}
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(kind Kind, headline float64, at time.Time) Run {
	details, _ := json.Marshal(map[string]any{"headline": headline})
	return Run{
		Timestamp: at,
		Host:      "node-a",
		Kind:      kind,
		Headline:  headline,
		Details:   details,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			store := setupStore(t, backend)
			base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

			require.NoError(t, store.Save(sampleRun(KindStream, 24000, base)))
			require.NoError(t, store.Save(sampleRun(KindFlops, 95.5, base.Add(time.Minute))))
			require.NoError(t, store.Save(sampleRun(KindStream, 25000, base.Add(2*time.Minute))))

			runs, err := store.LoadAll()
			require.NoError(t, err)
			require.Len(t, runs, 3)

			// Oldest first.
			assert.Equal(t, 24000.0, runs[0].Headline)
			assert.Equal(t, 95.5, runs[1].Headline)
			assert.Equal(t, 25000.0, runs[2].Headline)
			assert.Equal(t, "node-a", runs[0].Host)
			assert.JSONEq(t, `{"headline": 24000}`, string(runs[0].Details))
		})
	}
}

func TestStoreLoadLatestFiltersByKind(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			store := setupStore(t, backend)
			base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

			require.NoError(t, store.Save(sampleRun(KindStream, 24000, base)))
			require.NoError(t, store.Save(sampleRun(KindFlops, 95.5, base.Add(time.Minute))))
			require.NoError(t, store.Save(sampleRun(KindStream, 25000, base.Add(2*time.Minute))))

			latest, err := store.LoadLatest(KindStream)
			require.NoError(t, err)
			require.NotNil(t, latest)
			assert.Equal(t, 25000.0, latest.Headline)

			latest, err = store.LoadLatest(KindFlops)
			require.NoError(t, err)
			require.NotNil(t, latest)
			assert.Equal(t, 95.5, latest.Headline)
		})
	}
}

func TestStoreEmpty(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			store := setupStore(t, backend)

			runs, err := store.LoadAll()
			require.NoError(t, err)
			assert.Empty(t, runs)

			latest, err := store.LoadLatest(KindStream)
			require.NoError(t, err)
			assert.Nil(t, latest)
		})
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err = store.LoadAll()
	assert.Error(t, err)
}
