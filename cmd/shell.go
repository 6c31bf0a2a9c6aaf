package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"gopkg.in/urfave/cli.v1"

	"github.com/luca-patrignani/pow-ledger/ledger"
)

const (
	optCreate  = "Create transaction"
	optMine    = "Mine pending transactions"
	optBalance = "Get balance"
	optValid   = "Check chain validity"
	optList    = "List blocks"
	optShow    = "Show block"
	optPending = "Show pending transactions"
	optQuit    = "Quit"
)

var shellOptions = []string{optCreate, optMine, optBalance, optValid, optList, optShow, optPending, optQuit}

var errQuit = errors.New("quit")

func shellAction(c *cli.Context) error {
	return withSession(c, func(s *session) error {
		for {
			choice, err := pterm.DefaultInteractiveSelect.WithOptions(shellOptions).Show("What do you want to do?")
			if err != nil {
				return err
			}
			err = s.dispatch(choice)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				s.logger.Error(err.Error())
			}
		}
	})
}

func ask(text string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
	return strings.TrimSpace(answer), err
}

func (s *session) dispatch(choice string) error {
	switch choice {
	case optCreate:
		from, err := ask("From address (empty for a reward)")
		if err != nil {
			return err
		}
		to, err := ask("To address")
		if err != nil {
			return err
		}
		amount, err := ask("Amount")
		if err != nil {
			return err
		}
		return s.createTransaction(from, to, amount)
	case optMine:
		miner, err := ask("Miner address")
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		_, err = s.mine(ctx, ledger.Address(miner))
		return err
	case optBalance:
		address, err := ask("Address")
		if err != nil {
			return err
		}
		printBalance(ledger.Address(address), s.ledger.BalanceOf(ledger.Address(address)))
		return nil
	case optValid:
		printValidity(s.ledger.Verify())
		return nil
	case optList:
		return printBlocks(s.ledger.Blocks())
	case optShow:
		index, err := ask("Block index")
		if err != nil {
			return err
		}
		return s.showBlock(index)
	case optPending:
		return pterm.DefaultTable.WithHasHeader().WithData(transactionsTable(s.ledger.Pending())).Render()
	case optQuit:
		return errQuit
	}
	return errors.Errorf("unknown option %q", choice)
}

func (s *session) createTransaction(from, to, amount string) error {
	value, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid amount %q", amount)
	}
	// The menu has no way to enter "no address", so an empty source means a reward.
	tx := ledger.NewTransaction(ledger.Address(from), ledger.Address(to), value)
	if from == "" {
		tx = ledger.NewReward(ledger.Address(to), value)
	}
	if err := s.ledger.QueueTransaction(tx); err != nil {
		return err
	}
	pterm.Success.Printfln("queued %s", tx)
	return nil
}

func (s *session) showBlock(index string) error {
	i, err := strconv.Atoi(index)
	if err != nil {
		return errors.Wrapf(err, "invalid block index %q", index)
	}
	b, err := s.ledger.BlockAt(i)
	if err != nil {
		return err
	}
	pterm.Println(blockPanel(i, b))
	return nil
}
