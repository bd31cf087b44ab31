// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/GLEECBTC/komodo-daemon/chaincfg"
)

// BlockIndex is the subset of the local block index the checkpoint manager
// needs to validate the persisted state against the chain the node actually
// knows about.
type BlockIndex interface {
	// HaveBlock reports whether the block with the given hash is present
	// in the index.
	HaveBlock(hash *chainhash.Hash) bool
}

// KeySource is the wallet collaborator the manager queries for the master
// private key.  Implementations perform their own locking; the manager holds
// its checkpoint lock while calling in, so any other path that takes both
// locks must acquire the checkpoint lock first to avoid deadlock.
type KeySource interface {
	// PrivKeyByKeyID returns the private key whose compressed public key
	// hashes to the given Hash160 key ID.  The boolean is false when the
	// wallet does not hold the key.
	PrivKeyByKeyID(keyID []byte) (*btcec.PrivateKey, bool)
}

// Config is the collaborator set a Manager needs.
type Config struct {
	// ChainParams identifies the chain the node runs; its genesis hash
	// seeds a fresh checkpoint store.
	ChainParams *chaincfg.Params

	// Resolver resolves the activation parameters for the configured
	// chain.
	Resolver *Resolver

	// Store is the durable checkpoint state.
	Store Store

	// Index is the local block index.
	Index BlockIndex

	// Wallet supplies private keys.  It may be nil at startup and be
	// installed later via SetWallet once the wallet subsystem is loaded.
	Wallet KeySource
}

// Manager owns the persisted sync checkpoint state and the checkpoint
// signing key.  All state transitions happen under a single lock so that a
// concurrent key-rotation reset can never interleave with a read-modify-write
// of the store.
type Manager struct {
	mtx sync.Mutex // guards everything below and all store access

	cfg        Config
	checkpoint chainhash.Hash
	signKey    *btcec.PrivateKey
	initDone   bool
}

// New returns a Manager for the given collaborators.
func New(cfg *Config) (*Manager, error) {
	if cfg.ChainParams == nil {
		return nil, fmt.Errorf("checkpoints.New: chain params are required")
	}
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("checkpoints.New: a resolver is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("checkpoints.New: a store is required")
	}
	if cfg.Index == nil {
		return nil, fmt.Errorf("checkpoints.New: a block index is required")
	}
	return &Manager{cfg: *cfg}, nil
}

// SetWallet installs the wallet key source once the wallet subsystem is
// loaded.
func (m *Manager) SetWallet(wallet KeySource) {
	m.mtx.Lock()
	m.cfg.Wallet = wallet
	m.mtx.Unlock()
}

// OpenAtStartup reads and heals the persisted sync checkpoint state.  It
// must complete before any block processing consults the checkpoint, and it
// runs before the wallet is guaranteed to be loaded, so the master key is
// picked up later through TryInitSyncCheckpoint.
//
// A fresh install converges to a genesis-anchored checkpoint in a single
// pass.  When the stored master key binding differs from the expected one,
// the binding is rewritten and the checkpoint is reset, since a checkpoint
// trusted under a stale key must not continue to be trusted.
//
// Errors are of kind ErrPersistenceFailure when the store rejects a write and
// ErrCorruption when the persisted state is unusable; both abort node
// startup.
func (m *Manager) OpenAtStartup(expected SyncParams) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	// Load the current checkpoint, seeding a fresh store with the genesis
	// block hash.
	hash, ok, err := m.cfg.Store.Checkpoint()
	if err != nil || !ok {
		genesis := m.cfg.ChainParams.GenesisHash
		if err := m.cfg.Store.PutCheckpoint(genesis); err != nil {
			return makeError(ErrPersistenceFailure, fmt.Sprintf(
				"failed to init sync checkpoint: %v", err))
		}
		hash, ok, err = m.cfg.Store.Checkpoint()
		if err != nil || !ok {
			return makeError(ErrCorruption,
				"sync checkpoint unreadable after init")
		}
	}

	if !m.cfg.Index.HaveBlock(&hash) {
		return makeError(ErrCorruption, fmt.Sprintf(
			"sync checkpoint %v references an unknown block; remove "+
				"the checkpoint store and resynchronize", hash))
	}
	m.checkpoint = hash
	log.Infof("Using synchronized checkpoint %v", hash)

	// Rebind and reset when the stored master key does not match the one
	// configured for this chain.
	pubKey, ok, err := m.cfg.Store.MasterPubKey()
	if err != nil {
		return makeError(ErrPersistenceFailure, fmt.Sprintf(
			"failed to read checkpoint master key: %v", err))
	}
	if !ok || pubKey != expected.MasterPubKey {
		log.Infof("Checkpoint master key changed (stored %q, expected "+
			"%s), resetting sync checkpoint", pubKey,
			expected.MasterPubKey)
		if err := m.cfg.Store.PutMasterPubKey(expected.MasterPubKey); err != nil {
			return makeError(ErrPersistenceFailure, fmt.Sprintf(
				"failed to write new checkpoint master key: %v", err))
		}
		if err := m.cfg.Store.ResetCheckpoint(); err != nil {
			return makeError(ErrPersistenceFailure, fmt.Sprintf(
				"failed to reset sync checkpoint: %v", err))
		}
		m.checkpoint = chainhash.Hash{}
	}
	return nil
}

// TryInitSyncCheckpoint persists the master key binding and provisions the
// signing key from the wallet.  Only the first call does any work; later
// calls are no-ops returning success.  It is invoked when a checkpoint is
// first created or received, by which time the wallet is loaded.
//
// The returned error is of kind ErrPersistenceFailure when the binding could
// not be written.
func (m *Manager) TryInitSyncCheckpoint(params SyncParams) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.initDone {
		return nil
	}
	if err := m.cfg.Store.PutMasterPubKey(params.MasterPubKey); err != nil {
		return makeError(ErrPersistenceFailure, fmt.Sprintf(
			"failed to write new checkpoint master key: %v", err))
	}
	log.Debugf("Sync checkpoint try init done")
	m.tryInitMasterKey()
	m.initDone = true
	return nil
}

// TryInitMasterKey looks up the private key matching the configured master
// public key in the wallet and installs it as the checkpoint signing key.
// Most nodes do not hold the key, so absence is expected and not an error.
// It may be invoked from multiple call sites; once the key is installed all
// further calls are no-ops.
func (m *Manager) TryInitMasterKey() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.tryInitMasterKey()
}

// tryInitMasterKey performs the wallet lookup.
//
// This function MUST be called with the manager lock held (for writes).
func (m *Manager) tryInitMasterKey() {
	if m.signKey != nil {
		return
	}

	params, err := m.cfg.Resolver.Params()
	if err != nil {
		log.Debugf("Checkpoint master key not initialised: %v", err)
		return
	}
	if m.cfg.Wallet == nil {
		return
	}

	serializedPubKey, err := hex.DecodeString(params.MasterPubKey)
	if err != nil {
		log.Errorf("Invalid checkpoint master pubkey %q: %v",
			params.MasterPubKey, err)
		return
	}
	pubKey, err := btcec.ParsePubKey(serializedPubKey)
	if err != nil {
		log.Errorf("Invalid checkpoint master pubkey %q: %v",
			params.MasterPubKey, err)
		return
	}

	keyID := btcutil.Hash160(pubKey.SerializeCompressed())
	privKey, ok := m.cfg.Wallet.PrivKeyByKeyID(keyID)
	if !ok {
		return
	}
	m.signKey = privKey
	log.Infof("Sync checkpoint master key set for pubkey %s",
		params.MasterPubKey)
}

// IsMasterKeySet reports whether the checkpoint signing key has been
// installed.
func (m *Manager) IsMasterKeySet() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.signKey != nil
}

// Checkpoint returns the currently trusted checkpoint hash.  The boolean is
// false when no checkpoint is set, which is the case after a master key
// rotation until a new checkpoint is received.
func (m *Manager) Checkpoint() (chainhash.Hash, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	var zero chainhash.Hash
	return m.checkpoint, m.checkpoint != zero
}
