package cryptcbc

import "errors"

// Errors returned by the package. Callers are expected to branch with
// errors.Is; the wrapped messages carry the specifics.
var (
	// ErrFormat means the input is not a blob this configuration can read:
	// wrong header marker, truncated header, ciphertext not a multiple of
	// the block size, or an undecodable outer encoding.
	ErrFormat = errors.New("malformed ciphertext")

	// ErrValidation means the caller supplied an invalid configuration,
	// such as a wrong salt/IV length or an unsupported cipher/header
	// combination. These are caught by New, never mid-operation.
	ErrValidation = errors.New("invalid configuration")

	// ErrPadding means a strict padding rule was violated: data handed to
	// the "none" padding method is not block-aligned.
	ErrPadding = errors.New("invalid padding")
)
