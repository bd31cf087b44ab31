// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package checkpoints implements the synchronized checkpoint trust mechanism
for the Komodo chain family.

A synchronized checkpoint is a block hash that, once activation conditions
are met for the configured chain, the node treats as a non-reorgable anchor:
competing chains that do not build on it are rejected regardless of
accumulated work.  This package provides the per-chain activation registry
and resolver, the startup bootstrap that establishes and heals the persisted
checkpoint state, and the best-effort provisioning of the checkpoint master
signing key from the wallet.

Checkpoint message relay and signature verification live elsewhere; this
package only decides which key and which checkpoint state is authoritative
for the local node.
*/
package checkpoints
