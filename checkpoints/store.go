// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store is the durable key-value persistence backing the sync checkpoint
// state: the currently trusted checkpoint hash and the master public key it
// was last bound to.  Absence of a record is a normal outcome and is reported
// through the boolean, not through the error.
type Store interface {
	// Checkpoint returns the persisted checkpoint hash.  The boolean is
	// false when no checkpoint has been stored.
	Checkpoint() (chainhash.Hash, bool, error)

	// PutCheckpoint persists the given hash as the current checkpoint.
	PutCheckpoint(hash *chainhash.Hash) error

	// ResetCheckpoint clears the persisted checkpoint so that no hash is
	// stored.
	ResetCheckpoint() error

	// MasterPubKey returns the persisted master public key binding.  The
	// boolean is false when no key has been stored.
	MasterPubKey() (string, bool, error)

	// PutMasterPubKey persists the given hex-encoded public key as the
	// master key binding.
	PutMasterPubKey(pubKey string) error

	// Close releases the underlying resources.
	Close() error
}

// Key names under which LevelStore persists its records.
var (
	checkpointKeyName   = []byte("synccheckpoint")
	masterPubKeyKeyName = []byte("masterpubkey")
)

var _ Store = (*LevelStore)(nil)

// LevelStore implements Store on top of a leveldb database.
type LevelStore struct {
	db *leveldb.DB
}

// OpenLevelStore opens (creating if necessary) the checkpoint store at the
// given directory path.
func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint store at %q: %v",
			path, err)
	}
	return &LevelStore{db: db}, nil
}

// Checkpoint returns the persisted checkpoint hash.  The boolean is false
// when no checkpoint has been stored.
func (s *LevelStore) Checkpoint() (chainhash.Hash, bool, error) {
	serialized, err := s.db.Get(checkpointKeyName, nil)
	if err == leveldb.ErrNotFound {
		return chainhash.Hash{}, false, nil
	}
	if err != nil {
		return chainhash.Hash{}, false, err
	}

	hash, err := chainhash.NewHash(serialized)
	if err != nil {
		return chainhash.Hash{}, false, fmt.Errorf(
			"malformed checkpoint record: %v", err)
	}
	return *hash, true, nil
}

// PutCheckpoint persists the given hash as the current checkpoint.
func (s *LevelStore) PutCheckpoint(hash *chainhash.Hash) error {
	return s.db.Put(checkpointKeyName, hash[:], nil)
}

// ResetCheckpoint clears the persisted checkpoint.
func (s *LevelStore) ResetCheckpoint() error {
	return s.db.Delete(checkpointKeyName, nil)
}

// MasterPubKey returns the persisted master public key binding.  The boolean
// is false when no key has been stored.
func (s *LevelStore) MasterPubKey() (string, bool, error) {
	serialized, err := s.db.Get(masterPubKeyKeyName, nil)
	if err == leveldb.ErrNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(serialized), true, nil
}

// PutMasterPubKey persists the given hex-encoded public key as the master key
// binding.
func (s *LevelStore) PutMasterPubKey(pubKey string) error {
	return s.db.Put(masterPubKeyKeyName, []byte(pubKey), nil)
}

// Close closes the underlying database.
func (s *LevelStore) Close() error {
	return s.db.Close()
}
