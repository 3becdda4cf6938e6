// Package fixtures caches perft results keyed by (FEN, depth) so a
// caller doesn't recompute the same deep leaf counts on every run. It is
// ambient test tooling, not part of the position core: nothing under
// internal/board or internal/movegen imports it.
package fixtures

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/exp/maps"
)

// Cache wraps a BadgerDB instance keyed by (FEN, depth) perft queries.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a perft-result cache rooted at dir.
// Callers typically point dir at a subdirectory of t.TempDir() so the
// cache doesn't outlive the test run, or at a fixed path under the
// module's testdata/ to build a cache that's checked in and reused
// across CI runs.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// entry is the JSON payload stored per (FEN, depth) key.
type entry struct {
	Nodes uint64 `json:"nodes"`
}

func cacheKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("perft:%s:%d", fen, depth))
}

// Get returns a previously stored leaf count for (fen, depth), and
// whether one was found.
func (c *Cache) Get(fen string, depth int) (uint64, bool, error) {
	var e entry
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})

	return e.Nodes, found, err
}

// Put stores the leaf count computed for (fen, depth).
func (c *Cache) Put(fen string, depth int, nodes uint64) error {
	data, err := json.Marshal(entry{Nodes: nodes})
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(fen, depth), data)
	})
}

// GetOrCompute returns the cached leaf count for (fen, depth) if
// present, otherwise calls compute, stores the result, and returns it.
func (c *Cache) GetOrCompute(fen string, depth int, compute func() uint64) (uint64, error) {
	if nodes, found, err := c.Get(fen, depth); err != nil {
		return 0, err
	} else if found {
		return nodes, nil
	}

	nodes := compute()
	if err := c.Put(fen, depth, nodes); err != nil {
		return 0, err
	}
	return nodes, nil
}

// WarmPerftSuite runs run(fen, depth) for every (fen -> depth) pair in
// cases not already cached, in a fixed, deterministic FEN order so a
// test suite's cache-warming pass is reproducible across runs.
func (c *Cache) WarmPerftSuite(cases map[string]int, run func(fen string, depth int) uint64) error {
	fens := maps.Keys(cases)
	sort.Strings(fens)

	for _, fen := range fens {
		depth := cases[fen]
		if _, err := c.GetOrCompute(fen, depth, func() uint64 { return run(fen, depth) }); err != nil {
			return err
		}
	}
	return nil
}
