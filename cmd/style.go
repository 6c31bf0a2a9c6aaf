package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pow-ledger/ledger"
)

func blocksTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Nonce", "Txs", "Prev hash", "Hash"}}
	for i, b := range blocks {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.FormatUint(b.Nonce, 10),
			strconv.Itoa(len(b.Transactions)),
			b.PrevHash,
			b.Hash,
		})
	}
	return data
}

func printBlocks(blocks []ledger.Block) error {
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(blocksTable(blocks)).Render()
}

func blockPanel(index int, b ledger.Block) string {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|BLOCK " + strconv.Itoa(index) + "|")).WithTitleTopCenter().Sprint(b.String())
}

func transactionsTable(txs []ledger.Transaction) pterm.TableData {
	data := pterm.TableData{{"From", "To", "Amount"}}
	for _, tx := range txs {
		from, to := pterm.LightGreen("reward"), "-"
		if tx.From != nil {
			from = string(*tx.From)
		}
		if tx.To != nil {
			to = string(*tx.To)
		}
		data = append(data, []string{from, to, strconv.FormatInt(tx.Amount, 10)})
	}
	return data
}

func printBalance(address ledger.Address, balance int64) {
	amount := pterm.LightGreen(balance)
	if balance < 0 {
		amount = pterm.LightRed(balance)
	}
	pterm.Info.Printfln("balance of %s is %s", pterm.LightCyan(string(address)), amount)
}

func printValidity(err error) {
	if err == nil {
		pterm.Success.Println("chain is valid")
		return
	}
	pterm.Error.Printfln("chain is NOT valid: %v", err)
}
