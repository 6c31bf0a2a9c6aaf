package ledger

import (
	"log/slog"
	"time"
)

type Option func(*Ledger)

func WithDifficulty(difficulty int) Option {
	return func(l *Ledger) {
		l.difficulty = difficulty
	}
}

func WithReward(reward int64) Option {
	return func(l *Ledger) {
		l.reward = reward
	}
}

// WithGenesisTimestamp overrides the timestamp of the genesis block, which
// changes every hash in the chain.
func WithGenesisTimestamp(timestamp string) Option {
	return func(l *Ledger) {
		l.genesisTimestamp = timestamp
	}
}

// WithClock sets the source of the timestamps of mined blocks.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithMiningStats makes MinePending report its work into stats.
func WithMiningStats(stats *MiningStats) Option {
	return func(l *Ledger) {
		l.stats = stats
	}
}
