package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pow-ledger/ledger"
)

const spinnerRefresh = 100 * time.Millisecond

// mine mines the pending transactions while a spinner shows how many hashes
// have been tried so far.
func (s *session) mine(ctx context.Context, miner ledger.Address) (ledger.Block, error) {
	index := s.ledger.Len()
	text := fmt.Sprintf("Mining block %d at difficulty %d", index, s.ledger.Difficulty())
	spinner, _ := pterm.DefaultSpinner.Start(text)

	start := s.stats.Attempts()
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(spinnerRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				spinner.UpdateText(fmt.Sprintf("%s ... %d hashes", text, s.stats.Attempts()-start))
			}
		}
	}()

	block, err := s.ledger.MinePending(ctx, miner)
	close(done)
	wg.Wait()
	if err != nil {
		spinner.Fail(fmt.Sprintf("Mining block %d failed: %v", index, err))
		return ledger.Block{}, err
	}
	spinner.Success(fmt.Sprintf("Block %d mined with nonce %d. Reward: %d", index, block.Nonce, s.ledger.Reward()))
	return block, nil
}
