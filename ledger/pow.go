package ledger

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Mining checks for cancellation once every cancelCheckInterval nonces.
const cancelCheckInterval = 1024

// MiningStats counts mining work. It is safe to read while a block is being
// mined in another goroutine.
type MiningStats struct {
	attempts atomic.Uint64
	blocks   atomic.Uint64
}

// Attempts returns the number of digests computed so far.
func (s *MiningStats) Attempts() uint64 {
	return s.attempts.Load()
}

// Blocks returns the number of blocks mined to completion.
func (s *MiningStats) Blocks() uint64 {
	return s.blocks.Load()
}

// HashMeetsDifficulty reports whether the first difficulty hex digits of
// hash are all '0'.
func HashMeetsDifficulty(hash string, difficulty int) bool {
	if difficulty < 0 || difficulty > len(hash) {
		return false
	}
	for i := 0; i < difficulty; i++ {
		if hash[i] != '0' {
			return false
		}
	}
	return true
}

func checkDifficulty(difficulty int) error {
	if difficulty < 0 || difficulty > HashLength {
		return errors.Wrapf(ErrInvalidDifficulty, "difficulty must be in [0, %d], got %d", HashLength, difficulty)
	}
	return nil
}

// Mine increments the nonce until the block hash starts with difficulty
// zero hex digits. Nonce and Hash are always updated together. If ctx is
// cancelled first, Mine returns the context error and the block stays
// consistent at the last nonce tried.
func (b *Block) Mine(ctx context.Context, difficulty int) error {
	_, err := b.mine(ctx, difficulty, nil)
	return err
}

// mine returns the number of digests computed by this call.
func (b *Block) mine(ctx context.Context, difficulty int, stats *MiningStats) (uint64, error) {
	if err := checkDifficulty(difficulty); err != nil {
		return 0, err
	}
	var tries uint64
	for !HashMeetsDifficulty(b.Hash, difficulty) {
		if tries%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return tries, errors.Wrapf(err, "mining aborted at nonce %d", b.Nonce)
			}
		}
		if b.Nonce == math.MaxUint64 {
			return tries, ErrNonceExhausted
		}
		nonce := b.Nonce + 1
		hash := Digest(nonce, b.Timestamp, b.Transactions, b.PrevHash)
		b.Nonce, b.Hash = nonce, hash
		tries++
		if stats != nil {
			stats.attempts.Inc()
		}
	}
	if stats != nil {
		stats.blocks.Inc()
	}
	return tries, nil
}
