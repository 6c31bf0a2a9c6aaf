package ledger

import (
	"context"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultReward           = 500
	DefaultDifficulty       = 3
	DefaultGenesisTimestamp = "06/07/2019"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Ledger is a chain of mined blocks plus the pool of transactions waiting
// for the next block. It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	chain   []Block
	pending []Transaction

	// mineMu serialises MinePending so only one block is mined at a time.
	mineMu sync.Mutex

	reward           int64
	difficulty       int
	genesisTimestamp string
	now              func() time.Time
	logger           *slog.Logger
	stats            *MiningStats
}

// NewLedger creates a ledger holding only the genesis block, with an empty
// pending pool, a reward of DefaultReward and a difficulty of
// DefaultDifficulty unless overridden by opts.
func NewLedger(opts ...Option) (*Ledger, error) {
	l := &Ledger{
		pending:          []Transaction{},
		reward:           DefaultReward,
		difficulty:       DefaultDifficulty,
		genesisTimestamp: DefaultGenesisTimestamp,
		now:              time.Now,
		logger:           discardLogger,
	}
	for _, opt := range opts {
		opt(l)
	}
	if err := checkDifficulty(l.difficulty); err != nil {
		return nil, err
	}
	if l.reward < 0 {
		return nil, errors.Wrapf(ErrInvalidReward, "reward must not be negative, got %d", l.reward)
	}

	l.chain = []Block{NewGenesisBlock(l.genesisTimestamp)}
	return l, nil
}

func (l *Ledger) Difficulty() int {
	return l.difficulty
}

func (l *Ledger) Reward() int64 {
	return l.reward
}

// Len returns the number of blocks in the chain, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}

// LastBlock returns the tail of the chain.
func (l *Ledger) LastBlock() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	last, err := l.lastBlock()
	if err != nil {
		return Block{}, err
	}
	return last.clone(), nil
}

func (l *Ledger) lastBlock() (Block, error) {
	if len(l.chain) == 0 {
		return Block{}, ErrEmptyChain
	}
	return l.chain[len(l.chain)-1], nil
}

// BlockAt returns a copy of the block at index.
func (l *Ledger) BlockAt(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.chain) {
		return Block{}, errors.Wrapf(ErrIndexOutOfRange, "block %d of %d", index, len(l.chain))
	}
	return l.chain[index].clone(), nil
}

// Blocks returns a copy of the whole chain in order.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	blocks := make([]Block, len(l.chain))
	for i, b := range l.chain {
		blocks[i] = b.clone()
	}
	return blocks
}

// Pending returns a copy of the transactions waiting for the next block.
func (l *Ledger) Pending() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneTransactions(l.pending)
}

// QueueTransaction adds tx to the pending pool. Balances are not checked, so
// overdrafts are accepted; only negative amounts are refused.
func (l *Ledger) QueueTransaction(tx Transaction) error {
	if tx.Amount < 0 {
		return errors.Wrapf(ErrNegativeAmount, "transaction %s", tx)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, tx.clone())
	l.log().Debug("transaction queued", "transaction", tx.String())
	return nil
}

// MinePending mines every pending transaction into a new block on top of the
// chain, appends it and replaces the pending pool with the reward for miner.
// The reward is therefore only recorded by the next mined block.
//
// Transactions queued while the block is being mined stay pending after the
// reward. If ctx is cancelled before a valid nonce is found the ledger is
// left untouched.
func (l *Ledger) MinePending(ctx context.Context, miner Address) (Block, error) {
	l.mineMu.Lock()
	defer l.mineMu.Unlock()

	l.mu.RLock()
	tip, err := l.lastBlock()
	txs := slices.Clone(l.pending)
	index := len(l.chain)
	l.mu.RUnlock()
	if err != nil {
		return Block{}, err
	}

	start := time.Now()
	block := NewBlock(l.now().UTC().Format(time.RFC3339Nano), txs, tip.Hash)
	attempts, err := block.mine(ctx, l.difficulty, l.stats)
	if err != nil {
		l.log().Warn("mining aborted", "index", index, "nonce", block.Nonce, "error", err)
		return Block{}, errors.Wrapf(err, "failed to mine block %d", index)
	}

	l.mu.Lock()
	l.chain = append(l.chain, block)
	late := l.pending[len(txs):]
	pending := make([]Transaction, 0, 1+len(late))
	pending = append(pending, NewReward(miner, l.reward))
	l.pending = append(pending, late...)
	l.mu.Unlock()

	l.log().Info("block mined",
		"index", index,
		"nonce", block.Nonce,
		"attempts", attempts,
		"hash", block.Hash,
		"transactions", len(block.Transactions),
		"reward", l.reward,
		"miner", string(miner),
		"elapsed", time.Since(start),
	)
	return block.clone(), nil
}

// BalanceOf replays the whole chain, crediting transactions sent to address
// and debiting transactions sent from it. Pending transactions do not count.
// The result may be negative. It saturates at math.MinInt64 and
// math.MaxInt64 instead of wrapping around.
func (l *Ledger) BalanceOf(address Address) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var balance int64
	for _, b := range l.chain {
		for _, tx := range b.Transactions {
			if tx.To != nil && *tx.To == address {
				balance = addSaturating(balance, tx.Amount)
			}
			if tx.From != nil && *tx.From == address {
				balance = addSaturating(balance, -tx.Amount)
			}
		}
	}
	return balance
}

// addSaturating returns a+b clamped to the int64 range. b is never
// math.MinInt64 because amounts are not negative.
func addSaturating(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// log returns the configured logger, or one that discards everything for a
// zero Ledger.
func (l *Ledger) log() *slog.Logger {
	if l.logger == nil {
		return discardLogger
	}
	return l.logger
}
