// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

import (
	"testing"

	"github.com/GLEECBTC/komodo-daemon/chaincfg"
)

// testRegistry returns a registry with distinct per-network parameters so the
// tests can tell which entry a resolution selected.
func testRegistry() *Registry {
	mainNet := &SyncParams{
		ActivateAt:   HeightThreshold(100),
		MasterPubKey: "main",
	}
	testNet := &SyncParams{
		ActivateAt:   HeightThreshold(10),
		MasterPubKey: "test",
	}
	assetChains := map[string]SyncParams{
		"CCL": {
			ActivateAt:   TimeThreshold(1700000000),
			MasterPubKey: placeholderMasterPubKey,
		},
	}
	return NewRegistry(mainNet, testNet, assetChains)
}

func TestResolverParams(t *testing.T) {
	t.Parallel()

	registry := testRegistry()
	tests := []struct {
		name       string
		chain      chaincfg.ChainIdentity
		testNet    bool
		wantPubKey string
		wantErr    ErrorKind
	}{
		{
			name:    "unestablished identity",
			chain:   chaincfg.ChainIdentity{},
			wantErr: ErrNotInitialized,
		},
		{
			name:       "KMD main chain",
			chain:      chaincfg.NewChainIdentity(""),
			wantPubKey: "main",
		},
		{
			name:       "KMD with testnet flag",
			chain:      chaincfg.NewChainIdentity("KMD"),
			testNet:    true,
			wantPubKey: "test",
		},
		{
			name:       "configured asset chain",
			chain:      chaincfg.NewChainIdentity("CCL"),
			wantPubKey: placeholderMasterPubKey,
		},
		{
			name:    "unknown asset chain",
			chain:   chaincfg.NewChainIdentity("NOSUCHCHAIN"),
			wantErr: ErrNotConfigured,
		},
		{
			name:    "asset chain lookup is case-sensitive",
			chain:   chaincfg.NewChainIdentity("ccl"),
			wantErr: ErrNotConfigured,
		},
	}

	for _, test := range tests {
		resolver := NewResolver(registry, test.chain, test.testNet)
		params, err := resolver.Params()
		if test.wantErr != "" {
			if !IsErrorKind(err, test.wantErr) {
				t.Errorf("%s: got error %v, want kind %v",
					test.name, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
			continue
		}
		if params.MasterPubKey != test.wantPubKey {
			t.Errorf("%s: resolved pubkey %s, want %s", test.name,
				params.MasterPubKey, test.wantPubKey)
		}
	}
}

func TestResolverTestNetNotConfigured(t *testing.T) {
	t.Parallel()

	// The shipped registry has no test network entry; the testnet flag
	// must resolve to not configured rather than falling back to mainnet.
	resolver := NewResolver(DefaultRegistry(),
		chaincfg.NewChainIdentity("KMD"), true)
	_, err := resolver.Params()
	if !IsErrorKind(err, ErrNotConfigured) {
		t.Fatalf("got error %v, want kind %v", err, ErrNotConfigured)
	}
}

func TestResolverIsActive(t *testing.T) {
	t.Parallel()

	registry := testRegistry()
	tests := []struct {
		name      string
		chain     chaincfg.ChainIdentity
		height    int32
		timestamp int64
		want      bool
	}{
		{
			name:      "height gated, below",
			chain:     chaincfg.NewChainIdentity("KMD"),
			height:    100,
			timestamp: 1800000000,
			want:      false,
		},
		{
			name:      "height gated, above",
			chain:     chaincfg.NewChainIdentity("KMD"),
			height:    101,
			timestamp: 0,
			want:      true,
		},
		{
			name:      "timestamp gated, at threshold",
			chain:     chaincfg.NewChainIdentity("CCL"),
			height:    9999999,
			timestamp: 1700000000,
			want:      false,
		},
		{
			name:      "timestamp gated, past threshold",
			chain:     chaincfg.NewChainIdentity("CCL"),
			height:    0,
			timestamp: 1700000001,
			want:      true,
		},
		{
			name:      "unconfigured chain is never active",
			chain:     chaincfg.NewChainIdentity("NOSUCHCHAIN"),
			height:    9999999,
			timestamp: 1800000000,
			want:      false,
		},
		{
			name:      "unestablished identity is never active",
			chain:     chaincfg.ChainIdentity{},
			height:    9999999,
			timestamp: 1800000000,
			want:      false,
		},
	}

	for _, test := range tests {
		resolver := NewResolver(registry, test.chain, false)
		got := resolver.IsActive(test.height, test.timestamp)
		if got != test.want {
			t.Errorf("%s: IsActive(%d, %d) got %v, want %v",
				test.name, test.height, test.timestamp, got,
				test.want)
		}
	}
}
