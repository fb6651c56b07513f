/*
Package kb provides the knowledge base the identifier consults after
classification: a pluggable lookup from a predicted species label to
the descriptive record shown to the user. The classifier core never
depends on the content of the records, only on the Store interface.
*/
package kb

import (
	"context"
	"sort"
	"sync"
)

/*
Record is the descriptive knowledge stored for one species.
*/
type Record struct {
	// The species label the record is keyed by, e.g. "rose".
	Label string `yaml:"-"`
	// The display name of the species, e.g. "Garden Rose (Rosa spp.)".
	Name string `yaml:"name"`
	// The botanical family, e.g. "Rosaceae".
	Family string `yaml:"family"`
	// The informal group, e.g. "Flowering shrub".
	Group string `yaml:"group"`
	// A path or URL to an illustrative image. May point to a missing
	// asset: presentation layers degrade to a warning in that case.
	Image string `yaml:"image"`
	// A narrative description of the species.
	Description string `yaml:"description"`
	// Names of related species in the same group.
	OtherPlants []string `yaml:"other_plants"`
}

/*
Store is an interface to manage a store where species records can be
looked up by label, added and listed.

All its methods take a context that may allow cancelling the operation
(thus forcing the return of an error) if the implementation allows it.
*/
type Store interface {
	// Get takes a species label and returns the record stored for
	// it, nil if the store holds none, or an error if the store
	// cannot be queried.
	Get(ctx context.Context, label string) (*Record, error)
	// Put stores the given record under its label, replacing any
	// previous record for it. It returns an error if the record
	// cannot be stored.
	Put(ctx context.Context, r *Record) error
	// List returns the labels of all stored records in
	// lexicographical order, or an error if the store cannot be
	// queried.
	List(ctx context.Context) ([]string, error)
	// Close closes the store. Implementations should free any
	// resources in use and ensure pending changes are applied before
	// returning.
	Close(ctx context.Context) error
}

type memoryStore struct {
	records map[string]*Record
	lock    sync.RWMutex
}

/*
NewMemoryStore returns an implementation of Store with the process
memory space as underlying backend.
*/
func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string]*Record)}
}

func (ms *memoryStore) Get(ctx context.Context, label string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.lock.RLock()
	defer ms.lock.RUnlock()
	return ms.records[label], nil
}

func (ms *memoryStore) Put(ctx context.Context, r *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ms.lock.Lock()
	defer ms.lock.Unlock()
	ms.records[r.Label] = r
	return nil
}

func (ms *memoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ms.lock.RLock()
	defer ms.lock.RUnlock()
	labels := make([]string, 0, len(ms.records))
	for l := range ms.records {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

/*
Default returns a memory store preloaded with the records for the four
species the embedded corpus covers.
*/
func Default() Store {
	s := NewMemoryStore()
	for _, r := range defaultRecords {
		s.Put(context.Background(), r)
	}
	return s
}
