package shape

import (
	"sync"

	"github.com/loomdb/loom/graph"
	"github.com/loomdb/loom/query"

	"golang.org/x/sync/singleflight"
)

// Resolver resolves query documents against a fixed graph and memoizes
// the results. Documents are keyed by their canonical fingerprint, so
// equal documents share one cached resolution. Concurrent resolutions of
// the same document are collapsed into a single computation. A Resolver
// is safe for concurrent use.
type Resolver struct {
	graph *graph.Graph
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]Result
}

// NewResolver returns a resolver for the given graph.
func NewResolver(g *graph.Graph) *Resolver {
	return &Resolver{
		graph: g,
		cache: make(map[string]Result),
	}
}

// Resolve resolves the document, returning a cached result when the same
// document was resolved before. Failed resolutions are not cached.
func (r *Resolver) Resolve(doc query.Doc) (Result, error) {
	fp, err := doc.Fingerprint()
	if err != nil {
		return nil, err
	}
	key := string(fp)

	r.mu.RLock()
	result, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return result, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		result, err := Resolve(r.graph, doc)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[key] = result
		r.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Result), nil
}

// Len reports the number of cached resolutions.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// Reset drops all cached resolutions.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]Result)
}
