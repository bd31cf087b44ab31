// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
)

func TestAssetChainParams(t *testing.T) {
	t.Parallel()

	ccl := AssetChainParams("CCL")
	if ccl.Name != "CCL" {
		t.Errorf("unexpected name %s", ccl.Name)
	}
	if ccl.GenesisHash == nil || *ccl.GenesisHash != *MainNetParams.GenesisHash {
		t.Error("asset chains must share the KMD genesis block")
	}

	// Distinct symbols must never share a network magic.
	gleec := AssetChainParams("GLEEC")
	if ccl.Net == gleec.Net {
		t.Errorf("CCL and GLEEC derived the same net magic %v", ccl.Net)
	}
	if ccl.Net == MainNetParams.Net || gleec.Net == MainNetParams.Net {
		t.Error("asset chain magic collides with the main network")
	}

	// Derivation is deterministic.
	again := AssetChainParams("CCL")
	if again.Net != ccl.Net || again.DefaultPort != ccl.DefaultPort {
		t.Error("asset chain params are not deterministic")
	}
}

func TestChainIdentity(t *testing.T) {
	t.Parallel()

	var unset ChainIdentity
	if unset.Established() {
		t.Error("zero identity should not be established")
	}
	if unset.String() != "" {
		t.Errorf("zero identity string should be empty, got %q", unset.String())
	}

	kmd := NewChainIdentity("")
	if !kmd.Established() || !kmd.IsKMD() || kmd.String() != "KMD" {
		t.Errorf("empty symbol should select KMD, got %q", kmd.String())
	}

	explicit := NewChainIdentity("KMD")
	if !explicit.IsKMD() {
		t.Error("explicit KMD symbol should be the main chain")
	}

	asset := NewChainIdentity("CCL")
	if asset.IsKMD() {
		t.Error("asset chain identity should not be KMD")
	}
	if !asset.Established() || asset.String() != "CCL" {
		t.Errorf("unexpected asset identity %q", asset.String())
	}
}
