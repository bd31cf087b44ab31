// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

const (
	// syncCheckpointHeight is the KMD main chain block height past which
	// sync checkpoint enforcement begins.
	syncCheckpointHeight int32 = 3840000

	// syncCheckpointTimestamp is the unix timestamp past which sync
	// checkpoint enforcement begins on the asset chains.
	syncCheckpointTimestamp int64 = 1700000000
)

// placeholderMasterPubKey is shared by every chain in the default registry
// until the real per-chain keys are issued.  Operators must replace it before
// relying on sync checkpoints in production.
//
// TODO: fix master key
const placeholderMasterPubKey = "039a01cd626d5efbe7fd05a59d8e5fced53bacac589192278f9b00ad31654b6956"

// guldenMasterPubKey is the master key of the GULDEN test chain.
const guldenMasterPubKey = "02f9dc5271cc789aab77fb27e8007e681f93135cfcf92d4a514a4649c0e36f14ad"

// SyncParams describes the sync checkpoint activation parameters for a single
// chain: when enforcement turns on and which master public key is authorized
// to sign checkpoint updates.
type SyncParams struct {
	// ActivateAt is the height or timestamp past which the checkpoint
	// rule is enforced.
	ActivateAt ActivationThreshold

	// MasterPubKey is the hex-encoded compressed secp256k1 public key
	// whose holder is authorized to produce checkpoint updates.
	MasterPubKey string
}

// Registry is the immutable table of sync checkpoint activation parameters,
// keyed by chain.  It is built once at process start and is safe for
// concurrent readers.
type Registry struct {
	mainNet    SyncParams
	hasMainNet bool

	testNet    SyncParams
	hasTestNet bool

	assetChains map[string]SyncParams
}

// NewRegistry creates a registry from the given per-network parameters.  A
// nil mainNet or testNet means the checkpoint feature is not configured for
// that network.  The asset chain map is copied, so the caller may reuse it.
func NewRegistry(mainNet, testNet *SyncParams, assetChains map[string]SyncParams) *Registry {
	r := &Registry{
		assetChains: make(map[string]SyncParams, len(assetChains)),
	}
	if mainNet != nil {
		r.mainNet = *mainNet
		r.hasMainNet = true
	}
	if testNet != nil {
		r.testNet = *testNet
		r.hasTestNet = true
	}
	for symbol, params := range assetChains {
		r.assetChains[symbol] = params
	}
	return r
}

// DefaultRegistry returns the registry of sync checkpoint activation
// parameters shipped with the daemon.  The KMD main chain activates at a
// block height while the asset chains activate at a timestamp; the test
// network has no parameters configured.
func DefaultRegistry() *Registry {
	mainNet := &SyncParams{
		ActivateAt:   HeightThreshold(syncCheckpointHeight),
		MasterPubKey: placeholderMasterPubKey,
	}

	assetParams := SyncParams{
		ActivateAt:   TimeThreshold(syncCheckpointTimestamp),
		MasterPubKey: placeholderMasterPubKey,
	}
	assetChains := map[string]SyncParams{
		"CCL":    assetParams,
		"CLC":    assetParams,
		"GLEEC":  assetParams,
		"ILN":    assetParams,
		"KOIN":   assetParams,
		"PIRATE": assetParams,
		"THC":    assetParams,
		"BCZERO": assetParams,
		"RAPH":   assetParams,
		"MDX":    assetParams,

		// test chains:
		"DOC":   assetParams,
		"MARTY": assetParams,

		// test chain
		"GULDEN": {
			ActivateAt:   TimeThreshold(syncCheckpointTimestamp),
			MasterPubKey: guldenMasterPubKey,
		},
	}

	return NewRegistry(mainNet, nil, assetChains)
}

// MainNetParams returns the activation parameters for the KMD main chain.
// The boolean is false when the checkpoint feature is not configured for it.
func (r *Registry) MainNetParams() (SyncParams, bool) {
	return r.mainNet, r.hasMainNet
}

// TestNetParams returns the activation parameters for the test network.  The
// boolean is false when the checkpoint feature is not configured for it.
func (r *Registry) TestNetParams() (SyncParams, bool) {
	return r.testNet, r.hasTestNet
}

// AssetParams returns the activation parameters for the asset chain with the
// given symbol.  Lookups are case-sensitive.  The boolean is false when the
// chain has no parameters configured.
func (r *Registry) AssetParams(symbol string) (SyncParams, bool) {
	params, ok := r.assetChains[symbol]
	return params, ok
}
