package recursion

import "errors"

// Sentinel errors returned by the recursion exercises.
var (
	// ErrNegative indicates a negative argument where only n >= 0 makes sense.
	ErrNegative = errors.New("recursion: argument must be non-negative")

	// ErrNonPositive indicates an argument that must be >= 1.
	ErrNonPositive = errors.New("recursion: argument must be positive")

	// ErrOverflow indicates the result does not fit the return type.
	ErrOverflow = errors.New("recursion: result overflows")

	// ErrLength indicates a prefix length outside [0, len(s)].
	ErrLength = errors.New("recursion: prefix length out of range")
)

// maxFactorial is the largest n whose factorial fits into uint64.
const maxFactorial = 20
