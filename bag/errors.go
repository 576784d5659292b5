package bag

import "errors"

// ErrBagSaturated is returned by Insert/Merge when a binomial carry would
// propagate past the configured BagSize. The archival reference silently
// set fill to BagSize and dropped the final carry pennant; this
// implementation treats that condition as a hard error instead, per the
// corrected contract this design was reworked against.
var ErrBagSaturated = errors.New("bag: carry exceeds configured BagSize")

// ErrConfigMismatch is returned by Merge when the two bags were built
// with different BlockSize/BagSize — merging them would violate the
// invariant that every non-nil bag[i] is a pennant of rank exactly i
// holding 2^i*BlockSize elements.
var ErrConfigMismatch = errors.New("bag: cannot merge bags with different Config")
