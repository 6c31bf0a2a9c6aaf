package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"gopkg.in/urfave/cli.v1"

	"github.com/luca-patrignani/pow-ledger/config"
	"github.com/luca-patrignani/pow-ledger/ledger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "powledger"
	app.Usage = "a minimal proof-of-work ledger"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "path to a YAML config file"},
		cli.IntFlag{Name: "difficulty, d", Usage: "leading zero hex digits required in block hashes"},
		cli.Int64Flag{Name: "reward, r", Usage: "reward paid for every mined block"},
	}
	app.Commands = []cli.Command{
		{
			Name:  "demo",
			Usage: "mine a few blocks, move some coins and print the resulting chain",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "miner", Usage: "miner address (generated when empty)"},
				cli.StringFlag{Name: "peer", Usage: "counterparty address (generated when empty)"},
				cli.BoolFlag{Name: "strict", Usage: "only accept wallet addresses for --miner and --peer"},
			},
			Action: demoAction,
		},
		{
			Name:   "shell",
			Usage:  "drive a ledger interactively",
			Action: shellAction,
		},
		{
			Name:  "keygen",
			Usage: "print fresh wallet addresses",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "n", Value: 1, Usage: "number of addresses"},
				cli.BoolFlag{Name: "private", Usage: "also print the private key of every address"},
			},
			Action: keygenAction,
		},
	}
	return app
}

// session is the state shared by every command: one ledger, its mining
// counters and the logger.
type session struct {
	ledger   *ledger.Ledger
	stats    *ledger.MiningStats
	logger   *slog.Logger
	closeLog func() error
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return config.Config{}, err
	}
	if c.GlobalIsSet("difficulty") {
		cfg.Difficulty = c.GlobalInt("difficulty")
	}
	if c.GlobalIsSet("reward") {
		cfg.Reward = c.GlobalInt64("reward")
	}
	return cfg, cfg.Validate()
}

func newSession(cfg config.Config) (*session, error) {
	logger, closeLog := newLogger(cfg.Log)
	stats := &ledger.MiningStats{}
	opts := append(cfg.LedgerOptions(), ledger.WithLogger(logger), ledger.WithMiningStats(stats))
	l, err := ledger.NewLedger(opts...)
	if err != nil {
		_ = closeLog()
		return nil, errors.Wrap(err, "failed to create ledger")
	}
	logger.Debug("ledger initialised", "difficulty", l.Difficulty(), "reward", l.Reward())
	return &session{ledger: l, stats: stats, logger: logger, closeLog: closeLog}, nil
}

func withSession(c *cli.Context, run func(s *session) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.closeLog(); err != nil {
			pterm.Warning.Printfln("failed to close log file: %v", err)
		}
	}()
	return run(s)
}
