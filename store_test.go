package docsearch_test

import (
	"testing"
	"time"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeAged(t *testing.T, id string, age time.Duration, now time.Time) *docsearch.Store {
	t.Helper()
	return &docsearch.Store{
		ID:        id,
		DocType:   "gas",
		CreatedAt: now.Add(-age),
	}
}

func TestCleanupCandidates_RemovesOverAgeExceptMostRecent(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	day := 24 * time.Hour
	stores := []*docsearch.Store{
		storeAged(t, "s-200d", 200*day, now),
		storeAged(t, "s-100d", 100*day, now),
		storeAged(t, "s-10d", 10*day, now),
	}

	out := docsearch.CleanupCandidates(stores, now, 90*day, false)

	require.Len(t, out, 2)
	assert.Equal(t, "s-200d", out[0].ID)
	assert.Equal(t, "s-100d", out[1].ID)
}

func TestCleanupCandidates_SoleRecordSurvivesRegardlessOfAge(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stores := []*docsearch.Store{
		storeAged(t, "s-ancient", 1000*24*time.Hour, now),
	}

	out := docsearch.CleanupCandidates(stores, now, 90*24*time.Hour, false)

	assert.Empty(t, out)
}

func TestCleanupCandidates_MostRecentSurvivesEvenWhenOverAge(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	day := 24 * time.Hour
	stores := []*docsearch.Store{
		storeAged(t, "s-300d", 300*day, now),
		storeAged(t, "s-150d", 150*day, now),
	}

	out := docsearch.CleanupCandidates(stores, now, 90*day, false)

	require.Len(t, out, 1)
	assert.Equal(t, "s-300d", out[0].ID)
}

func TestCleanupCandidates_ForceRemovesSoleSurvivor(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	stores := []*docsearch.Store{
		storeAged(t, "s-ancient", 1000*24*time.Hour, now),
	}

	out := docsearch.CleanupCandidates(stores, now, 90*24*time.Hour, true)

	require.Len(t, out, 1)
	assert.Equal(t, "s-ancient", out[0].ID)
}

func TestCleanupCandidates_NothingOverAge(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	day := 24 * time.Hour
	stores := []*docsearch.Store{
		storeAged(t, "s-10d", 10*day, now),
		storeAged(t, "s-30d", 30*day, now),
	}

	assert.Empty(t, docsearch.CleanupCandidates(stores, now, 90*day, false))
}

func TestStoreValidate(t *testing.T) {
	t.Parallel()

	s := &docsearch.Store{ID: "fileSearchStores/abc", DocType: "gas"}
	assert.NoError(t, s.Validate())

	missingID := &docsearch.Store{DocType: "gas"}
	assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(missingID.Validate()))

	missingType := &docsearch.Store{ID: "fileSearchStores/abc"}
	assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(missingType.Validate()))
}

func TestCrawlTargetWithDefaults(t *testing.T) {
	t.Parallel()

	got := docsearch.CrawlTarget{DocType: "gas", RootURL: "https://example.com/docs"}.WithDefaults()

	assert.Equal(t, docsearch.DefaultMaxDepth, got.MaxDepth)
	assert.Equal(t, docsearch.DefaultMaxPages, got.MaxPages)
	assert.Equal(t, docsearch.DefaultDelay, got.Delay)

	// Explicit bounds are preserved.
	explicit := docsearch.CrawlTarget{MaxDepth: 1, MaxPages: 5, Delay: 100 * time.Millisecond}.WithDefaults()
	assert.Equal(t, 1, explicit.MaxDepth)
	assert.Equal(t, 5, explicit.MaxPages)
	assert.Equal(t, 100*time.Millisecond, explicit.Delay)
}
