package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"gopkg.in/urfave/cli.v1"

	"github.com/luca-patrignani/pow-ledger/ledger"
	"github.com/luca-patrignani/pow-ledger/wallet"
)

type demoReport struct {
	MinerBalance int64
	PeerBalance  int64
	Blocks       int
	Valid        bool
}

func demoAction(c *cli.Context) error {
	miner, err := addressOrNew(c.String("miner"), c.Bool("strict"))
	if err != nil {
		return err
	}
	peer, err := addressOrNew(c.String("peer"), c.Bool("strict"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return withSession(c, func(s *session) error {
		_, err := runDemo(ctx, s, miner, peer)
		return err
	})
}

// addressOrNew generates a wallet address when address is empty. With strict
// set, a given address must be a wallet address.
func addressOrNew(address string, strict bool) (ledger.Address, error) {
	switch {
	case address == "":
		return wallet.NewAddress()
	case strict:
		return wallet.ParseAddress(address)
	}
	return ledger.Address(address), nil
}

// runDemo mines two blocks, moves 100 coins from the miner to the peer and 20
// back, mines a third block and prints the resulting chain.
func runDemo(ctx context.Context, s *session, miner, peer ledger.Address) (demoReport, error) {
	l := s.ledger
	pterm.Info.Printfln("miner address: %s", miner)
	pterm.Info.Printfln("peer address:  %s", peer)

	for i := 0; i < 2; i++ {
		pterm.DefaultSection.Println("Starting mining")
		if _, err := s.mine(ctx, miner); err != nil {
			return demoReport{}, err
		}
		// The reward is only pending at this point.
		printBalance(miner, l.BalanceOf(miner))
	}

	for _, tx := range []ledger.Transaction{
		ledger.NewTransaction(miner, peer, 100),
		ledger.NewTransaction(peer, miner, 20),
	} {
		if err := l.QueueTransaction(tx); err != nil {
			return demoReport{}, err
		}
	}

	pterm.DefaultSection.Println("Starting mining")
	if _, err := s.mine(ctx, miner); err != nil {
		return demoReport{}, err
	}
	printBalance(miner, l.BalanceOf(miner))
	printBalance(peer, l.BalanceOf(peer))

	blocks := l.Blocks()
	if err := printBlocks(blocks); err != nil {
		return demoReport{}, err
	}
	err := l.Verify()
	printValidity(err)

	return demoReport{
		MinerBalance: l.BalanceOf(miner),
		PeerBalance:  l.BalanceOf(peer),
		Blocks:       len(blocks),
		Valid:        err == nil,
	}, nil
}

func keygenAction(c *cli.Context) error {
	for i := 0; i < c.Int("n"); i++ {
		line, err := keyLine(wallet.NewKeypair(), c.Bool("private"))
		if err != nil {
			return err
		}
		pterm.Println(line)
	}
	return nil
}

func keyLine(k *wallet.Keypair, private bool) (string, error) {
	address, err := k.Address()
	if err != nil {
		return "", err
	}
	if !private {
		return string(address), nil
	}
	secret, err := k.PrivateHex()
	if err != nil {
		return "", err
	}
	return string(address) + " " + secret, nil
}
