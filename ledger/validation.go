package ledger

import "fmt"

// Verify checks the genesis placeholder and then, for every later block in
// chain order, its content hash, its link to the predecessor and its proof
// of work. The first failure is returned as a *ValidationError.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.chain) == 0 {
		return ErrEmptyChain
	}

	genesis := l.chain[0]
	if genesis.PrevHash != GenesisPrevHash {
		return &ValidationError{Index: 0, Err: ErrBadGenesis, Expected: GenesisPrevHash, Got: genesis.PrevHash}
	}

	for i := 1; i < len(l.chain); i++ {
		if err := l.validateBlock(i, l.chain[i], l.chain[i-1]); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether Verify finds no problem. It is stricter than
// checking content hashes and links alone: the genesis placeholder and the
// proof of work of every mined block are verified too, so a block whose hash
// was recomputed after an edit fails even at the tip of the chain.
func (l *Ledger) IsValid() bool {
	err := l.Verify()
	if err != nil {
		l.log().Warn("chain verification failed", "error", err)
	}
	return err == nil
}

func (l *Ledger) validateBlock(index int, current, previous Block) error {
	if expected := current.CalculateHash(); current.Hash != expected {
		return &ValidationError{Index: index, Err: ErrHashMismatch, Expected: expected, Got: current.Hash}
	}

	if current.PrevHash != previous.Hash {
		return &ValidationError{Index: index, Err: ErrLinkMismatch, Expected: previous.Hash, Got: current.PrevHash}
	}

	if !HashMeetsDifficulty(current.Hash, l.difficulty) {
		return &ValidationError{
			Index:    index,
			Err:      ErrInsufficientWork,
			Expected: fmt.Sprintf("%d leading zeros", l.difficulty),
			Got:      current.Hash,
		}
	}
	return nil
}
