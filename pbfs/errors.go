package pbfs

import "errors"

// ErrSourceOutOfRange is returned by Run when s is outside [0, g.NNodes()).
var ErrSourceOutOfRange = errors.New("pbfs: source vertex out of range")

// ErrThresholdMismatch is returned by New when BlockSize is not a
// multiple of Threshold — walkPennant's per-pennant slicing assumes
// Threshold divides BlockSize evenly.
var ErrThresholdMismatch = errors.New("pbfs: BlockSize must be a multiple of Threshold")
