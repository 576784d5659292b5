package graph

import "errors"

// ErrDimensionMismatch is returned by New when the coordinate input's
// lengths are inconsistent with the declared dimensions.
var ErrDimensionMismatch = errors.New("graph: ir/jc lengths inconsistent with m/n/nnz")

// ErrSourceOutOfRange reports a source id outside [0, nNodes). The
// traversal entry points in bfs and pbfs return their own package's
// ErrSourceOutOfRange, not this one.
var ErrSourceOutOfRange = errors.New("graph: source vertex out of range")
