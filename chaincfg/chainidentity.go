// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// kmdSymbol is the symbol of the main chain.  An empty asset chain name on
// the command line selects it.
const kmdSymbol = "KMD"

// ChainIdentity identifies which chain of the Komodo family this process is
// running: the KMD main chain or a named asset chain.  The zero value means
// the identity has not been established yet; construct one with
// NewChainIdentity once the configuration is known.
type ChainIdentity struct {
	symbol string
}

// NewChainIdentity returns the identity for the given asset chain symbol.
// An empty symbol selects the KMD main chain.
func NewChainIdentity(symbol string) ChainIdentity {
	if symbol == "" {
		symbol = kmdSymbol
	}
	return ChainIdentity{symbol: symbol}
}

// Established reports whether the chain identity has been set.  Lookups keyed
// on an unestablished identity are premature and must be retried after
// configuration is loaded.
func (c ChainIdentity) Established() bool {
	return c.symbol != ""
}

// IsKMD reports whether the identity refers to the KMD main chain rather
// than an asset chain.
func (c ChainIdentity) IsKMD() bool {
	return c.symbol == kmdSymbol
}

// String returns the chain symbol.  It is empty for an unestablished
// identity.
func (c ChainIdentity) String() string {
	return c.symbol
}
