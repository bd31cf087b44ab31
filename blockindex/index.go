// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockindex tracks the set of block hashes known to the local node.
package blockindex

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Index is the set of block hashes the local node knows about.  The
// checkpoint subsystem consults it to decide whether a persisted checkpoint
// still refers to a block we have.  It is safe for concurrent access.
type Index struct {
	mtx    sync.RWMutex
	hashes map[chainhash.Hash]struct{}
}

// New returns a block index seeded with the given genesis hash.
func New(genesisHash *chainhash.Hash) *Index {
	idx := &Index{
		hashes: make(map[chainhash.Hash]struct{}),
	}
	idx.hashes[*genesisHash] = struct{}{}
	return idx
}

// AddBlock records the block with the given hash as known.
func (idx *Index) AddBlock(hash *chainhash.Hash) {
	idx.mtx.Lock()
	idx.hashes[*hash] = struct{}{}
	idx.mtx.Unlock()
}

// HaveBlock reports whether the block with the given hash is present in the
// index.
func (idx *Index) HaveBlock(hash *chainhash.Hash) bool {
	idx.mtx.RLock()
	_, ok := idx.hashes[*hash]
	idx.mtx.RUnlock()
	return ok
}
