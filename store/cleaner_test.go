package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/chinng-inta/gemini-file-search-tool/mock"
	"github.com/chinng-inta/gemini-file-search-tool/store"
)

func agedStore(id, docType string, age time.Duration) *docsearch.Store {
	return &docsearch.Store{ID: id, DocType: docType, CreatedAt: time.Now().UTC().Add(-age)}
}

func cleanupFixture(records map[string][]*docsearch.Store) (*store.Cleaner, *[]string, *[]string) {
	var deleted, removed []string

	registry := &mock.StoreRegistry{
		AllFn: func(ctx context.Context) (map[string][]*docsearch.Store, error) {
			return records, nil
		},
		RemoveFn: func(ctx context.Context, docType, storeID string) error {
			removed = append(removed, storeID)
			return nil
		},
	}
	remote := &mock.FileSearchService{
		DeleteStoreFn: func(ctx context.Context, storeID string) error {
			deleted = append(deleted, storeID)
			return nil
		},
	}
	return store.NewCleaner(registry, remote, discardLogger()), &deleted, &removed
}

func TestCleaner_RemovesAgedStoresKeepsNewest(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour
	records := map[string][]*docsearch.Store{
		"gas": {
			agedStore("fileSearchStores/ancient", "gas", 200*day),
			agedStore("fileSearchStores/old", "gas", 120*day),
		},
		"react": {
			agedStore("fileSearchStores/fresh", "react", 10*day),
		},
	}

	c, deleted, removed := cleanupFixture(records)
	result, err := c.Cleanup(context.Background(), 90*day, false)
	require.NoError(t, err)

	// "old" is the newest gas record, so it survives despite its age.
	require.Len(t, result.Removed, 1)
	assert.Equal(t, "fileSearchStores/ancient", result.Removed[0].ID)
	assert.Equal(t, []string{"fileSearchStores/ancient"}, *deleted)
	assert.Equal(t, []string{"fileSearchStores/ancient"}, *removed)
	assert.Empty(t, result.Failures)
}

func TestCleaner_ForceRemovesNewest(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour
	records := map[string][]*docsearch.Store{
		"gas": {
			agedStore("fileSearchStores/ancient", "gas", 200*day),
			agedStore("fileSearchStores/old", "gas", 120*day),
		},
	}

	c, _, _ := cleanupFixture(records)
	result, err := c.Cleanup(context.Background(), 90*day, true)
	require.NoError(t, err)
	assert.Len(t, result.Removed, 2)
}

func TestCleaner_RemoteAlreadyGone(t *testing.T) {
	t.Parallel()

	records := map[string][]*docsearch.Store{
		"gas": {
			agedStore("fileSearchStores/ghost", "gas", 200*24*time.Hour),
			agedStore("fileSearchStores/keep", "gas", time.Hour),
		},
	}
	c, _, removed := cleanupFixture(records)
	c.Remote = &mock.FileSearchService{
		DeleteStoreFn: func(ctx context.Context, storeID string) error {
			return docsearch.Errorf(docsearch.ENOTFOUND, "store not found")
		},
	}

	result, err := c.Cleanup(context.Background(), 90*24*time.Hour, false)
	require.NoError(t, err)
	assert.Len(t, result.Removed, 1, "missing remote store still gets its record removed")
	assert.Equal(t, []string{"fileSearchStores/ghost"}, *removed)
}

func TestCleaner_RemoteFailureReportedNotFatal(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour
	records := map[string][]*docsearch.Store{
		"gas": {
			agedStore("fileSearchStores/stuck", "gas", 200*day),
			agedStore("fileSearchStores/ancient", "gas", 150*day),
			agedStore("fileSearchStores/keep", "gas", day),
		},
	}
	c, _, removed := cleanupFixture(records)
	c.Remote = &mock.FileSearchService{
		DeleteStoreFn: func(ctx context.Context, storeID string) error {
			if storeID == "fileSearchStores/stuck" {
				return docsearch.Errorf(docsearch.EUNAVAILABLE, "service unavailable")
			}
			return nil
		},
	}

	result, err := c.Cleanup(context.Background(), 90*day, false)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "fileSearchStores/stuck", result.Failures[0].StoreID)
	assert.Equal(t, []string{"fileSearchStores/ancient"}, *removed, "failed record stays registered")
}

func TestQueryService_UnknownTypeFailsBeforeGeneration(t *testing.T) {
	t.Parallel()

	generated := false
	q := store.NewQueryService(
		&mock.StoreRegistry{
			ActiveFn: func(ctx context.Context, docType string) (*docsearch.Store, error) {
				return nil, docsearch.Errorf(docsearch.ENOTFOUND, "no store registered for document type %q", docType)
			},
		},
		&mock.Generator{
			GenerateFn: func(ctx context.Context, storeID, prompt string) (string, error) {
				generated = true
				return "", nil
			},
		},
		discardLogger(),
	)

	_, err := q.Query(context.Background(), "zig", "how do I parse JSON?")
	require.Error(t, err)
	assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
	assert.False(t, generated, "no remote call for unknown document types")
}

func TestQueryService_QueriesActiveStore(t *testing.T) {
	t.Parallel()

	q := store.NewQueryService(
		&mock.StoreRegistry{
			ActiveFn: func(ctx context.Context, docType string) (*docsearch.Store, error) {
				return &docsearch.Store{ID: "fileSearchStores/active", DocType: docType}, nil
			},
		},
		&mock.Generator{
			GenerateFn: func(ctx context.Context, storeID, prompt string) (string, error) {
				assert.Equal(t, "fileSearchStores/active", storeID)
				return "grounded answer", nil
			},
		},
		discardLogger(),
	)

	answer, err := q.Query(context.Background(), "gas", "how do I send mail?")
	require.NoError(t, err)
	assert.Equal(t, "grounded answer", answer)
}
