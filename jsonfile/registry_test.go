package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/jsonfile"
)

func testStore(id, docType string, created time.Time) *docsearch.Store {
	return &docsearch.Store{
		ID:        id,
		DocType:   docType,
		CreatedAt: created,
		FileCount: 1,
	}
}

func TestRegistry_AddAndActive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := jsonfile.NewRegistry(filepath.Join(t.TempDir(), "stores.json"))

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/old", "gas", base)))
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/new", "gas", base.Add(24*time.Hour))))

	active, err := r.Active(ctx, "gas")
	require.NoError(t, err)
	assert.Equal(t, "fileSearchStores/new", active.ID)
}

func TestRegistry_ActiveUnknownType(t *testing.T) {
	t.Parallel()

	r := jsonfile.NewRegistry(filepath.Join(t.TempDir(), "stores.json"))
	_, err := r.Active(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
}

func TestRegistry_DuplicateIDConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := jsonfile.NewRegistry(filepath.Join(t.TempDir(), "stores.json"))

	s := testStore("fileSearchStores/abc", "gas", time.Now().UTC())
	require.NoError(t, r.Add(ctx, s))

	err := r.Add(ctx, testStore("fileSearchStores/abc", "gas", time.Now().UTC()))
	require.Error(t, err)
	assert.Equal(t, docsearch.ECONFLICT, docsearch.ErrorCode(err))
}

func TestRegistry_AppendPreservesExistingRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := jsonfile.NewRegistry(filepath.Join(t.TempDir(), "stores.json"))

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/a", "gas", base)))
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/b", "gas", base.Add(time.Hour))))
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/c", "react", base)))

	gas, err := r.ByType(ctx, "gas")
	require.NoError(t, err)
	require.Len(t, gas, 2)
	assert.Equal(t, "fileSearchStores/a", gas[0].ID, "insertion order is creation order")
	assert.Equal(t, "fileSearchStores/b", gas[1].ID)

	all, err := r.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRegistry_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := jsonfile.NewRegistry(filepath.Join(t.TempDir(), "stores.json"))

	base := time.Now().UTC()
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/a", "gas", base)))
	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/b", "gas", base.Add(time.Hour))))

	require.NoError(t, r.Remove(ctx, "gas", "fileSearchStores/a"))
	gas, err := r.ByType(ctx, "gas")
	require.NoError(t, err)
	require.Len(t, gas, 1)
	assert.Equal(t, "fileSearchStores/b", gas[0].ID)

	err = r.Remove(ctx, "gas", "fileSearchStores/a")
	require.Error(t, err)
	assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
}

func TestRegistry_FileFormat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stores.json")
	r := jsonfile.NewRegistry(path)

	require.NoError(t, r.Add(ctx, testStore("fileSearchStores/abc", "gas", time.Now().UTC())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var f struct {
		Stores map[string][]json.RawMessage `json:"stores"`
	}
	require.NoError(t, json.Unmarshal(data, &f))
	require.Len(t, f.Stores["gas"], 1)
}

func TestRegistry_SharedFileBetweenInstances(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stores.json")

	a := jsonfile.NewRegistry(path)
	require.NoError(t, a.Add(ctx, testStore("fileSearchStores/abc", "gas", time.Now().UTC())))

	// A second instance over the same file sees the record.
	b := jsonfile.NewRegistry(path)
	active, err := b.Active(ctx, "gas")
	require.NoError(t, err)
	assert.Equal(t, "fileSearchStores/abc", active.ID)
}
