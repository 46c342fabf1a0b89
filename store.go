package docsearch

import (
	"context"
	"sort"
	"time"
)

// Store is one retrieval-store record: a generation of uploaded documents
// for a document type, identified by the remote service's opaque store id.
// Multiple records may exist per document type; the most recently created
// one is the active record used to answer queries.
type Store struct {
	ID          string    `json:"storeId"`
	DocType     string    `json:"docType"`
	CreatedAt   time.Time `json:"createdAt"`
	Description string    `json:"description,omitempty"`
	FileCount   int       `json:"fileCount"`
}

// Validate returns an error if the store record contains invalid fields.
func (s *Store) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "store id required")
	}
	if s.DocType == "" {
		return Errorf(EINVALID, "store document type required")
	}
	return nil
}

// StoreRegistry is the durable mapping of document type to retrieval-store
// records. Records are append-only per document type; insertion order is
// creation order. Implementations must serialize writers and rewrite the
// mapping atomically so readers never observe a partial write.
type StoreRegistry interface {
	// Active returns the most recently created record for the document
	// type. Returns ENOTFOUND if no record exists.
	Active(ctx context.Context, docType string) (*Store, error)

	// Add appends a record. Existing records are never mutated. Adding a
	// store id that already exists for the document type returns ECONFLICT.
	Add(ctx context.Context, store *Store) error

	// ByType returns all records for a document type in creation order.
	ByType(ctx context.Context, docType string) ([]*Store, error)

	// All returns every record grouped by document type.
	All(ctx context.Context) (map[string][]*Store, error)

	// Remove deletes a single record. Returns ENOTFOUND if absent.
	Remove(ctx context.Context, docType, storeID string) error
}

// DefaultMaxStoreAge is the age past which store records become cleanup
// candidates.
const DefaultMaxStoreAge = 90 * 24 * time.Hour

// CleanupCandidates selects the records of one document type eligible for
// age-based removal: every record older than maxAge except the most
// recently created one, which is always retained so routine cleanup can
// never leave a document type without a queryable store. With force set,
// the most recent record is eligible too.
func CleanupCandidates(stores []*Store, now time.Time, maxAge time.Duration, force bool) []*Store {
	if len(stores) == 0 {
		return nil
	}

	newest := stores[0]
	for _, s := range stores[1:] {
		if s.CreatedAt.After(newest.CreatedAt) {
			newest = s
		}
	}

	var out []*Store
	for _, s := range stores {
		if s == newest && !force {
			continue
		}
		if now.Sub(s.CreatedAt) > maxAge {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// RejectedFile reports one artifact the retrieval service did not accept.
type RejectedFile struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// UploadResult is the outcome of pushing one artifact batch to the
// retrieval service. A partial failure still yields a Store whose
// FileCount reflects only the accepted subset.
type UploadResult struct {
	Store    *Store         `json:"store"`
	Rejected []RejectedFile `json:"rejected,omitempty"`
}

// FileSearchService is the boundary to the external managed retrieval
// service. Implementations classify auth failures as EUNAUTHORIZED and
// timeouts/rate limits/server errors as EUNAVAILABLE so the retry utility
// can tell them apart.
type FileSearchService interface {
	// CreateStore creates a new remote retrieval store and returns its id.
	CreateStore(ctx context.Context, displayName string) (string, error)

	// UploadFile uploads one file into a store and waits for the remote
	// import to complete.
	UploadFile(ctx context.Context, storeID, path string) error

	// DeleteStore removes a remote retrieval store.
	DeleteStore(ctx context.Context, storeID string) error
}

// Generator performs grounded text generation against a retrieval store.
type Generator interface {
	// Generate answers a prompt grounded in the given store. Failures are
	// surfaced directly: generation is not idempotent, so callers must not
	// silently repeat it.
	Generate(ctx context.Context, storeID, prompt string) (string, error)
}

// CleanupFailure reports one record whose remote deletion failed.
type CleanupFailure struct {
	StoreID string `json:"storeId"`
	DocType string `json:"docType"`
	Err     string `json:"error"`
}

// CleanupResult reports the outcome of an age-based cleanup pass.
type CleanupResult struct {
	Removed  []*Store         `json:"removed"`
	Failures []CleanupFailure `json:"failures,omitempty"`
}
