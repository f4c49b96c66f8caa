package core

import "errors"

var (
	// ErrVoteMismatch means a post arrived with an empty active-vote list but
	// nonzero net rshares. The raw feed itself is inconsistent; the post must
	// not be committed with guessed values.
	ErrVoteMismatch = errors.New("active votes and net rshares disagree")

	ErrBadAmount = errors.New("malformed asset amount")
)
