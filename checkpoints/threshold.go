// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// ActivationThreshold gates when sync checkpoint enforcement begins for a
// chain.  It is either a block height or a unix timestamp.  The legacy
// configuration encoding stores both in one numeric field and disambiguates
// by magnitude against the locktime threshold; ThresholdFromRaw performs that
// split once at the boundary so the rest of the code works with the tagged
// value.
type ActivationThreshold struct {
	value  int64
	isTime bool
}

// HeightThreshold returns a threshold that activates past the given block
// height.
func HeightThreshold(height int32) ActivationThreshold {
	return ActivationThreshold{value: int64(height)}
}

// TimeThreshold returns a threshold that activates past the given unix
// timestamp.
func TimeThreshold(timestamp int64) ActivationThreshold {
	return ActivationThreshold{value: timestamp, isTime: true}
}

// ThresholdFromRaw converts a raw numeric activation value into a tagged
// threshold.  Values below the locktime threshold are block heights, values
// at or above it are unix timestamps, the same convention used by
// transaction lock times.
func ThresholdFromRaw(v int64) ActivationThreshold {
	if v < txscript.LockTimeThreshold {
		return ActivationThreshold{value: v}
	}
	return ActivationThreshold{value: v, isTime: true}
}

// Reached reports whether the threshold has been passed at the given block
// height and timestamp.  The comparison is strictly greater than, the same
// comparison used for the notary season gating.
func (t ActivationThreshold) Reached(height int32, timestamp int64) bool {
	if t.isTime {
		return timestamp > t.value
	}
	return int64(height) > t.value
}

// IsTimestamp reports whether the threshold is a unix timestamp rather than
// a block height.
func (t ActivationThreshold) IsTimestamp() bool {
	return t.isTime
}

// Value returns the raw height or timestamp value.
func (t ActivationThreshold) Value() int64 {
	return t.value
}

// String returns the threshold in a human-readable form.
func (t ActivationThreshold) String() string {
	if t.isTime {
		return fmt.Sprintf("timestamp %d", t.value)
	}
	return fmt.Sprintf("height %d", t.value)
}
