// Copyright (c) 2022 The utreexo developers
// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

// keyIDSize is the length of a Hash160 key ID.
const keyIDSize = 20

// KeyStore holds the private keys the node controls, indexed by the Hash160
// of the serialized compressed public key.  It is just enough wallet for the
// checkpoint subsystem to answer whether this node holds the checkpoint
// master key.
//
// The key store owns its own lock.  Callers that also hold the checkpoint
// lock must acquire that lock first.
type KeyStore struct {
	mtx sync.RWMutex

	path    string
	keys    map[[keyIDSize]byte]*btcec.PrivateKey
	encoded []string
}

// New returns an empty key store that persists to the given file path.
func New(path string) *KeyStore {
	return &KeyStore{
		path: path,
		keys: make(map[[keyIDSize]byte]*btcec.PrivateKey),
	}
}

// AddPrivKey indexes the given private key.  The change is not persisted
// until Save is called.
func (ks *KeyStore) AddPrivKey(privKey *btcec.PrivateKey) {
	ks.mtx.Lock()
	defer ks.mtx.Unlock()

	ks.addPrivKey(privKey)
}

// addPrivKey indexes the key by the Hash160 of its compressed pubkey.
//
// This function MUST be called with the key store lock held (for writes).
func (ks *KeyStore) addPrivKey(privKey *btcec.PrivateKey) {
	serialized := privKey.PubKey().SerializeCompressed()
	var keyID [keyIDSize]byte
	copy(keyID[:], btcutil.Hash160(serialized))
	ks.keys[keyID] = privKey
}

// AddPrivKeyWIF decodes the given WIF-encoded private key and indexes it.
func (ks *KeyStore) AddPrivKeyWIF(encoded string) error {
	wif, err := btcutil.DecodeWIF(encoded)
	if err != nil {
		return fmt.Errorf("failed to parse the passed in key: %v", err)
	}

	ks.mtx.Lock()
	defer ks.mtx.Unlock()

	ks.addPrivKey(wif.PrivKey)
	ks.encoded = append(ks.encoded, encoded)
	return nil
}

// PrivKeyByKeyID returns the private key whose compressed public key hashes
// to the given Hash160 key ID.  The boolean is false when the store does not
// hold the key.
func (ks *KeyStore) PrivKeyByKeyID(keyID []byte) (*btcec.PrivateKey, bool) {
	if len(keyID) != keyIDSize {
		return nil, false
	}
	var id [keyIDSize]byte
	copy(id[:], keyID)

	ks.mtx.RLock()
	defer ks.mtx.RUnlock()

	privKey, ok := ks.keys[id]
	return privKey, ok
}

// NumKeys returns the number of keys the store holds.
func (ks *KeyStore) NumKeys() int {
	ks.mtx.RLock()
	defer ks.mtx.RUnlock()

	return len(ks.keys)
}

// keyStoreFile is the on-disk form of the key store.
type keyStoreFile struct {
	Keys []string `json:"keys"`
}

// Load reads the key store file from disk.  A missing file is not an error;
// the store simply starts empty.
func (ks *KeyStore) Load() error {
	ks.mtx.Lock()
	defer ks.mtx.Unlock()

	data, err := os.ReadFile(ks.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read the key store file: %v", err)
	}

	var file keyStoreFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse the key store file: %v", err)
	}

	for _, encoded := range file.Keys {
		wif, err := btcutil.DecodeWIF(encoded)
		if err != nil {
			return fmt.Errorf("failed to parse key in the key "+
				"store file: %v", err)
		}
		ks.addPrivKey(wif.PrivKey)
		ks.encoded = append(ks.encoded, encoded)
	}
	log.Infof("Loaded %d key(s) from %s", len(file.Keys), ks.path)
	return nil
}

// Save writes the key store to disk in json.
func (ks *KeyStore) Save() error {
	ks.mtx.RLock()
	defer ks.mtx.RUnlock()

	serialized, err := json.Marshal(&keyStoreFile{Keys: ks.encoded})
	if err != nil {
		return fmt.Errorf("cannot serialize the key store: %v", err)
	}
	if err := os.WriteFile(ks.path, serialized, 0600); err != nil {
		return fmt.Errorf("failed to write the key store: %v", err)
	}
	return nil
}
