package outline

import "errors"

// ErrInvalidCommand is returned by Accumulate for a command with the wrong
// number of points, an unknown op or a non-finite coordinate.
var ErrInvalidCommand = errors.New("outline: invalid command")
