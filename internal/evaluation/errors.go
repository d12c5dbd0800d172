package evaluation

import "errors"

// ErrMisalignedInputs indicates the question, gold answer, and user
// answer slices differ in length.
var ErrMisalignedInputs = errors.New("evaluation inputs are not position-aligned")
