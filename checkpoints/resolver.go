// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

import (
	"fmt"

	"github.com/GLEECBTC/komodo-daemon/chaincfg"
)

// Resolver resolves the sync checkpoint activation parameters for the chain
// this process is configured for and evaluates the activation predicate.  It
// takes no locks and performs no I/O; the registry and chain identity are
// fixed at construction.
type Resolver struct {
	registry *Registry
	chain    chaincfg.ChainIdentity
	testNet  bool
}

// NewResolver returns a resolver for the given registry and chain identity.
// The testNet flag selects the test network parameters when the identity is
// the KMD main chain.
func NewResolver(registry *Registry, chain chaincfg.ChainIdentity, testNet bool) *Resolver {
	return &Resolver{
		registry: registry,
		chain:    chain,
		testNet:  testNet,
	}
}

// Params resolves the activation parameters for the configured chain.
//
// The returned error is of kind ErrNotInitialized when the chain identity has
// not been established, and of kind ErrNotConfigured when no parameters exist
// for the chain.  Both mean the checkpoint feature is inert; neither requires
// escalation.
func (r *Resolver) Params() (SyncParams, error) {
	if !r.chain.Established() {
		return SyncParams{}, makeError(ErrNotInitialized,
			"chain identity not initialised yet")
	}

	if r.chain.IsKMD() {
		if r.testNet {
			params, ok := r.registry.TestNetParams()
			if !ok {
				return SyncParams{}, makeError(ErrNotConfigured,
					"no sync checkpoint params for the test network")
			}
			return params, nil
		}

		params, ok := r.registry.MainNetParams()
		if !ok {
			return SyncParams{}, makeError(ErrNotConfigured,
				"no sync checkpoint params for the main network")
		}
		return params, nil
	}

	params, ok := r.registry.AssetParams(r.chain.String())
	if !ok {
		return SyncParams{}, makeError(ErrNotConfigured, fmt.Sprintf(
			"no sync checkpoint params for asset chain %s", r.chain))
	}
	return params, nil
}

// IsActive reports whether sync checkpoint enforcement is active for the
// configured chain at the given block height and timestamp.  A chain without
// configured parameters is never active; resolution failures are logged but
// never escalated.
func (r *Resolver) IsActive(height int32, timestamp int64) bool {
	params, err := r.Params()
	if err != nil {
		log.Debugf("Sync checkpoint inactive: %v", err)
		return false
	}

	if !params.ActivateAt.Reached(height, timestamp) {
		return false
	}
	log.Debugf("Sync checkpoint active for chain %s: height %d, "+
		"timestamp %d past %v", r.chain, height, timestamp,
		params.ActivateAt)
	return true
}
