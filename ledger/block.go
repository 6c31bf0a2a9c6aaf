package ledger

import (
	"fmt"
	"strings"
)

// Block holds a set of transactions linked to the previous block through
// PrevHash. Hash is always the Digest of the other four fields unless the
// block has been tampered with.
type Block struct {
	Nonce        uint64        `json:"nonce"`
	Timestamp    string        `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	PrevHash     string        `json:"prev_hash"`
	Hash         string        `json:"hash"`
}

// NewBlock builds an unmined block with nonce 0. An empty prevHash means the
// block has no predecessor and is replaced by GenesisPrevHash. The block
// keeps its own copy of txs.
func NewBlock(timestamp string, txs []Transaction, prevHash string) Block {
	if prevHash == "" {
		prevHash = GenesisPrevHash
	}
	b := Block{
		Timestamp:    timestamp,
		Transactions: cloneTransactions(txs),
		PrevHash:     prevHash,
	}
	if b.Transactions == nil {
		b.Transactions = []Transaction{}
	}
	b.Hash = b.CalculateHash()
	return b
}

// NewGenesisBlock builds the first block of every ledger: a single zero
// amount transaction without source or destination.
func NewGenesisBlock(timestamp string) Block {
	return NewBlock(timestamp, []Transaction{{Amount: 0}}, GenesisPrevHash)
}

// CalculateHash recomputes the digest from the stored fields, ignoring Hash.
func (b Block) CalculateHash() string {
	return Digest(b.Nonce, b.Timestamp, b.Transactions, b.PrevHash)
}

func (b Block) clone() Block {
	b.Transactions = cloneTransactions(b.Transactions)
	return b
}

func (b Block) String() string {
	txs := make([]string, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = tx.String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "nonce: %d\n", b.Nonce)
	fmt.Fprintf(&sb, "timestamp: %s\n", b.Timestamp)
	fmt.Fprintf(&sb, "transactions: [%s]\n", strings.Join(txs, ", "))
	fmt.Fprintf(&sb, "prev_hash: %s\n", b.PrevHash)
	fmt.Fprintf(&sb, "curr_hash: %s\n", b.Hash)
	return sb.String()
}
