package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"github.com/luca-patrignani/pow-ledger/config"
	"github.com/luca-patrignani/pow-ledger/ledger"
	"github.com/luca-patrignani/pow-ledger/wallet"
)

func newTestSession(t *testing.T, difficulty int) *session {
	t.Helper()
	s, err := newSession(config.Config{
		Difficulty:       difficulty,
		Reward:           ledger.DefaultReward,
		GenesisTimestamp: ledger.DefaultGenesisTimestamp,
		Log:              config.LogConfig{Level: "error"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.closeLog() })
	return s
}

func TestRunDemo(t *testing.T) {
	s := newTestSession(t, 1)

	report, err := runDemo(context.Background(), s, "miner", "peer")
	require.NoError(t, err)

	assert.EqualValues(t, 920, report.MinerBalance)
	assert.EqualValues(t, 80, report.PeerBalance)
	assert.Equal(t, 4, report.Blocks)
	assert.True(t, report.Valid)
	assert.EqualValues(t, 3, s.stats.Blocks())
}

func TestRunDemoCancelled(t *testing.T) {
	s := newTestSession(t, ledger.HashLength)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runDemo(ctx, s, "miner", "peer")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, s.ledger.Len())
}

func TestAddressOrNew(t *testing.T) {
	a, err := addressOrNew("given", false)
	require.NoError(t, err)
	assert.Equal(t, ledger.Address("given"), a)

	generated, err := addressOrNew("", true)
	require.NoError(t, err)
	assert.Len(t, string(generated), 64)

	_, err = addressOrNew("given", true)
	assert.ErrorIs(t, err, wallet.ErrMalformedAddress)

	parsed, err := addressOrNew(string(generated), true)
	require.NoError(t, err)
	assert.Equal(t, generated, parsed)
}

func TestKeyLine(t *testing.T) {
	k := wallet.NewKeypair()
	address, err := k.Address()
	require.NoError(t, err)

	line, err := keyLine(k, false)
	require.NoError(t, err)
	assert.Equal(t, string(address), line)

	line, err = keyLine(k, true)
	require.NoError(t, err)
	fields := strings.Fields(line)
	require.Len(t, fields, 2)
	assert.Equal(t, string(address), fields[0])
	assert.Len(t, fields[1], 64)
}

func TestCreateTransaction(t *testing.T) {
	s := newTestSession(t, 1)

	require.NoError(t, s.createTransaction("a", "b", "10"))
	require.NoError(t, s.createTransaction("", "b", "5"))
	assert.Error(t, s.createTransaction("a", "b", "ten"))
	assert.ErrorIs(t, s.createTransaction("a", "b", "-3"), ledger.ErrNegativeAmount)

	pending := s.ledger.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, ledger.NewTransaction("a", "b", 10), pending[0])
	assert.True(t, pending[1].IsReward())
	assert.Equal(t, ledger.Addr("b"), pending[1].To)
}

func TestShowBlock(t *testing.T) {
	s := newTestSession(t, 1)

	assert.NoError(t, s.showBlock("0"))
	assert.Error(t, s.showBlock("zero"))
	assert.ErrorIs(t, s.showBlock("3"), ledger.ErrIndexOutOfRange)
}

func TestDispatch(t *testing.T) {
	s := newTestSession(t, 1)

	assert.ErrorIs(t, s.dispatch(optQuit), errQuit)
	assert.NoError(t, s.dispatch(optValid))
	assert.NoError(t, s.dispatch(optList))
	assert.NoError(t, s.dispatch(optPending))
	assert.Error(t, s.dispatch("dance"))
}

func TestBlocksTable(t *testing.T) {
	s := newTestSession(t, 1)
	_, err := s.ledger.MinePending(context.Background(), "miner")
	require.NoError(t, err)

	blocks := s.ledger.Blocks()
	data := blocksTable(blocks)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"#", "Nonce", "Txs", "Prev hash", "Hash"}, data[0])
	assert.Equal(t, "0", data[1][0])
	assert.Equal(t, ledger.GenesisPrevHash, data[1][3])
	assert.Equal(t, blocks[0].Hash, data[2][3])
	assert.Equal(t, blocks[1].Hash, data[2][4])
}

func TestNewLoggerWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "powledger.log")
	logger, closeLog := newLogger(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})

	logger.Info("block mined", "index", 1)
	logger.Debug("hidden")
	require.NoError(t, closeLog())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "block mined")
	assert.NotContains(t, string(content), "hidden")
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: 2\nreward: 10\n"), 0o600))

	app := newApp()
	var cfg config.Config
	app.Action = func(c *cli.Context) error {
		var err error
		cfg, err = loadConfig(c)
		return err
	}
	require.NoError(t, app.Run([]string{"powledger", "--config", path, "--difficulty", "1"}))

	assert.Equal(t, 1, cfg.Difficulty)
	assert.EqualValues(t, 10, cfg.Reward)
}
