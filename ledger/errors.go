package ledger

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyChain        = errors.New("blockchain is empty")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNegativeAmount    = errors.New("negative transaction amount")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidReward     = errors.New("invalid mining reward")
	ErrNonceExhausted    = errors.New("nonce space exhausted")

	ErrBadGenesis       = errors.New("invalid genesis block")
	ErrHashMismatch     = errors.New("invalid hash")
	ErrLinkMismatch     = errors.New("invalid prev hash")
	ErrInsufficientWork = errors.New("hash does not meet difficulty")
)

// ValidationError reports the first block that failed verification and the
// check it failed. Err is one of ErrBadGenesis, ErrHashMismatch,
// ErrLinkMismatch or ErrInsufficientWork.
type ValidationError struct {
	Index    int
	Err      error
	Expected string
	Got      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("block %d invalid: %v: expected %s, got %s", e.Index, e.Err, e.Expected, e.Got)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
