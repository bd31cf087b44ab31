// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It must only be called with hard-coded, and therefore
// known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, _ := chainhash.NewHashFromStr(hexStr)
	return hash
}

func TestIndex(t *testing.T) {
	t.Parallel()

	genesis := newHashFromStr("027e3758c3a65b12aa1046462b486d0a63bfa1beae327897f56c5cfb7daaae71")
	other := newHashFromStr("000000000000000000000000000000000000000000000000000000000000beef")

	idx := New(genesis)
	if !idx.HaveBlock(genesis) {
		t.Fatal("index should contain the genesis hash")
	}
	if idx.HaveBlock(other) {
		t.Fatal("index should not contain an unadded hash")
	}

	idx.AddBlock(other)
	if !idx.HaveBlock(other) {
		t.Fatal("index should contain an added hash")
	}
}
