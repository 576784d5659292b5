package pennant

import "errors"

// ErrLeaf is returned by Split when called on a rank-0 pennant, which has
// no children to split off.
var ErrLeaf = errors.New("pennant: split requires a non-leaf pennant")
