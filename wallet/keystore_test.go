// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

// newTestWIF generates a fresh key and its WIF encoding.
func newTestWIF(t *testing.T) (*btcec.PrivateKey, string) {
	t.Helper()

	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	wif, err := btcutil.NewWIF(privKey, &btcchaincfg.MainNetParams, true)
	require.NoError(t, err)
	return privKey, wif.String()
}

func TestKeyStoreLookup(t *testing.T) {
	privKey, encoded := newTestWIF(t)

	ks := New(filepath.Join(t.TempDir(), "keystore.json"))
	require.NoError(t, ks.AddPrivKeyWIF(encoded))
	require.Equal(t, 1, ks.NumKeys())

	keyID := btcutil.Hash160(privKey.PubKey().SerializeCompressed())
	got, ok := ks.PrivKeyByKeyID(keyID)
	require.True(t, ok)
	require.Equal(t, privKey.Serialize(), got.Serialize())

	// Unknown and malformed key IDs miss without error.
	otherKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	otherID := btcutil.Hash160(otherKey.PubKey().SerializeCompressed())
	_, ok = ks.PrivKeyByKeyID(otherID)
	require.False(t, ok)

	_, ok = ks.PrivKeyByKeyID([]byte("short"))
	require.False(t, ok)
}

func TestKeyStoreBadWIF(t *testing.T) {
	ks := New(filepath.Join(t.TempDir(), "keystore.json"))
	require.Error(t, ks.AddPrivKeyWIF("not a wif"))
	require.Equal(t, 0, ks.NumKeys())
}

func TestKeyStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.json")

	privKey, encoded := newTestWIF(t)
	ks := New(path)
	require.NoError(t, ks.AddPrivKeyWIF(encoded))
	require.NoError(t, ks.Save())

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 1, reloaded.NumKeys())

	keyID := btcutil.Hash160(privKey.PubKey().SerializeCompressed())
	got, ok := reloaded.PrivKeyByKeyID(keyID)
	require.True(t, ok)
	require.Equal(t, privKey.Serialize(), got.Serialize())
}

func TestKeyStoreLoadMissingFile(t *testing.T) {
	ks := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, ks.Load())
	require.Equal(t, 0, ks.NumKeys())
}
