package ledger

import "fmt"

// Address identifies an account. Addresses are opaque: any string, the
// empty one included, is a valid address.
type Address string

// Transaction moves Amount from From to To. A nil From marks a reward or
// genesis transaction: it credits To without debiting anyone. A nil To
// credits nobody.
type Transaction struct {
	From   *Address `json:"from"`
	To     *Address `json:"to"`
	Amount int64    `json:"amount"`
}

// Addr returns a pointer to a copy of a, for building transactions by hand.
func Addr(a Address) *Address {
	return &a
}

func NewTransaction(from, to Address, amount int64) Transaction {
	return Transaction{From: Addr(from), To: Addr(to), Amount: amount}
}

// NewReward creates a transaction crediting amount to miner out of nothing.
func NewReward(miner Address, amount int64) Transaction {
	return Transaction{To: Addr(miner), Amount: amount}
}

func (t Transaction) IsReward() bool {
	return t.From == nil
}

// clone copies the addresses so the result shares no memory with t.
func (t Transaction) clone() Transaction {
	if t.From != nil {
		t.From = Addr(*t.From)
	}
	if t.To != nil {
		t.To = Addr(*t.To)
	}
	return t
}

func cloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = tx.clone()
	}
	return out
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s -> %s: %d", display(t.From), display(t.To), t.Amount)
}

func display(a *Address) string {
	if a == nil {
		return "<none>"
	}
	return fmt.Sprintf("%q", string(*a))
}
