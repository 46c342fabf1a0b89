// Package jsonfile provides durable state kept in JSON files on disk: the
// retrieval-store registry and the crawl-target catalog. Registry writes are
// guarded by a file lock so concurrent processes serialize, and the file is
// replaced atomically so readers never see a partial write.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	docsearch "github.com/chinng-inta/gemini-file-search-tool"
)

// lockRetryDelay paces lock acquisition attempts across processes.
const lockRetryDelay = 50 * time.Millisecond

var _ docsearch.StoreRegistry = (*Registry)(nil)

// Registry is the file-backed store registry. The mapping lives in a single
// JSON document; a sidecar lock file serializes writers across processes.
type Registry struct {
	path string
	lock *flock.Flock
}

// NewRegistry creates a registry persisted at path. The sidecar lock file
// lives next to it.
func NewRegistry(path string) *Registry {
	return &Registry{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

type registryFile struct {
	Stores map[string][]*docsearch.Store `json:"stores"`
}

// Active implements docsearch.StoreRegistry.
func (r *Registry) Active(ctx context.Context, docType string) (*docsearch.Store, error) {
	stores, err := r.ByType(ctx, docType)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, docsearch.Errorf(docsearch.ENOTFOUND, "no store registered for document type %q", docType)
	}

	active := stores[0]
	for _, s := range stores[1:] {
		if s.CreatedAt.After(active.CreatedAt) {
			active = s
		}
	}
	return active, nil
}

// Add implements docsearch.StoreRegistry.
func (r *Registry) Add(ctx context.Context, store *docsearch.Store) error {
	if err := store.Validate(); err != nil {
		return err
	}

	return r.update(ctx, func(f *registryFile) error {
		for _, existing := range f.Stores[store.DocType] {
			if existing.ID == store.ID {
				return docsearch.Errorf(docsearch.ECONFLICT, "store %q already registered for document type %q", store.ID, store.DocType)
			}
		}
		f.Stores[store.DocType] = append(f.Stores[store.DocType], store)
		return nil
	})
}

// ByType implements docsearch.StoreRegistry.
func (r *Registry) ByType(ctx context.Context, docType string) ([]*docsearch.Store, error) {
	f, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	return f.Stores[docType], nil
}

// All implements docsearch.StoreRegistry.
func (r *Registry) All(ctx context.Context) (map[string][]*docsearch.Store, error) {
	f, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	return f.Stores, nil
}

// Remove implements docsearch.StoreRegistry.
func (r *Registry) Remove(ctx context.Context, docType, storeID string) error {
	return r.update(ctx, func(f *registryFile) error {
		records := f.Stores[docType]
		for i, s := range records {
			if s.ID == storeID {
				f.Stores[docType] = append(records[:i:i], records[i+1:]...)
				if len(f.Stores[docType]) == 0 {
					delete(f.Stores, docType)
				}
				return nil
			}
		}
		return docsearch.Errorf(docsearch.ENOTFOUND, "store %q not registered for document type %q", storeID, docType)
	})
}

// read loads the registry under a shared lock. A missing file is an empty
// registry.
func (r *Registry) read(ctx context.Context) (*registryFile, error) {
	locked, err := r.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "acquire registry read lock: %v", err)
	}
	defer r.lock.Unlock()

	return r.load()
}

// update applies fn to the registry under an exclusive lock and rewrites
// the file atomically.
func (r *Registry) update(ctx context.Context, fn func(*registryFile) error) error {
	locked, err := r.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		return docsearch.Errorf(docsearch.EINTERNAL, "acquire registry lock: %v", err)
	}
	defer r.lock.Unlock()

	f, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		return err
	}
	return r.save(f)
}

func (r *Registry) load() (*registryFile, error) {
	f := &registryFile{Stores: make(map[string][]*docsearch.Store)}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "read registry: %v", err)
	}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "parse registry %s: %v", r.path, err)
	}
	if f.Stores == nil {
		f.Stores = make(map[string][]*docsearch.Store)
	}

	// Records inherit the document type they are grouped under.
	for docType, records := range f.Stores {
		for _, s := range records {
			if s.DocType == "" {
				s.DocType = docType
			}
		}
	}
	return f, nil
}

// save writes the registry to a temp file in the same directory and renames
// it over the old one.
func (r *Registry) save(f *registryFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "encode registry: %v", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "create registry dir: %v", err)
	}

	tmp, err := os.CreateTemp(dir, ".stores-*.json")
	if err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "create registry temp file: %v", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return docsearch.Errorf(docsearch.EINTERNAL, "write registry: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "close registry temp file: %v", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "chmod registry: %v", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "replace registry: %v", err)
	}
	return nil
}
