// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These constants are the network magic values for the default networks.  The
// main and test network values are fixed; asset chain magics are derived from
// the chain symbol, see AssetChainParams.
const (
	// MainNet represents the main Komodo network.
	MainNet wire.BitcoinNet = 0x8de4eef9

	// TestNet represents the Komodo test network.
	TestNet wire.BitcoinNet = 0x8df1e5fa
)

var (
	// genesisHash is the hash of the first block in the chain.  The KMD
	// main chain and every asset chain start from the same genesis block;
	// only the network magic and ports differ between them.
	genesisHash = newHashFromStr("027e3758c3a65b12aa1046462b486d0a63bfa1beae327897f56c5cfb7daaae71")

	// testNetGenesisHash is the hash of the first block in the chain for
	// the test network.
	testNetGenesisHash = newHashFromStr("05a60a92d99d85997cce3b87616c089f6124d7342af37106edc76126334a2c38")
)

// Params defines a Komodo family network by its parameters.  These parameters
// may be used by applications to differentiate the KMD main chain, its test
// network, and the independently configured asset chains.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key
}

// MainNetParams defines the network parameters for the main Komodo network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         MainNet,
	DefaultPort: "7770",

	// Chain parameters
	GenesisHash:      genesisHash,
	CoinbaseMaturity: 100,

	// Address encoding magics
	PubKeyHashAddrID: 0x3c, // starts with R
	ScriptHashAddrID: 0x55, // starts with b
	PrivateKeyID:     0xbc, // starts with U
}

// TestNetParams defines the network parameters for the Komodo test network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         TestNet,
	DefaultPort: "17770",

	// Chain parameters
	GenesisHash:      testNetGenesisHash,
	CoinbaseMaturity: 100,

	// Address encoding magics
	PubKeyHashAddrID: 0x00,
	ScriptHashAddrID: 0x05,
	PrivateKeyID:     0x80,
}

// AssetChainParams creates network parameters for an asset chain from its
// symbol.  Asset chains share the KMD genesis block and address encoding; the
// network magic and default port are derived from the symbol so that chains
// with distinct names never cross-connect.
func AssetChainParams(symbol string) Params {
	// The message start is derived from the first four bytes of the
	// sha256d of the chain symbol, in line with how the other wire
	// network identities are little endian encoded.
	hashDouble := chainhash.DoubleHashB([]byte(symbol))
	net := binary.LittleEndian.Uint32(hashDouble[0:4])

	// Derived peer-to-peer port in the unprivileged range.
	port := 16000 + binary.LittleEndian.Uint16(hashDouble[4:6])%48000

	return Params{
		Name:        symbol,
		Net:         wire.BitcoinNet(net),
		DefaultPort: strconv.Itoa(int(port)),

		GenesisHash:      genesisHash,
		CoinbaseMaturity: 100,

		PubKeyHashAddrID: 0x3c,
		ScriptHashAddrID: 0x55,
		PrivateKeyID:     0xbc,
	}
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it ignores the error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, _ := chainhash.NewHashFromStr(hexStr)
	return hash
}
