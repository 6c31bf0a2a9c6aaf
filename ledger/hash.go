package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// CodecVersion is written into every digest input. Bump it whenever the
// canonical encoding changes.
const CodecVersion = 1

// HashLength is the length of a hex encoded digest.
const HashLength = sha256.Size * 2

// GenesisPrevHash is the predecessor hash of the genesis block.
var GenesisPrevHash = strings.Repeat("0", HashLength)

// Field order is the lexicographic order of the JSON keys.
type canonicalTransaction struct {
	Amount int64   `json:"amount"`
	From   *string `json:"from"`
	To     *string `json:"to"`
}

type canonicalBlock struct {
	Nonce        uint64                 `json:"nonce"`
	PrevHash     string                 `json:"prev_hash"`
	Timestamp    string                 `json:"timestamp"`
	Transactions []canonicalTransaction `json:"transactions"`
	Version      int                    `json:"v"`
}

// Encode returns the canonical serialization of the hashed block fields:
// a compact JSON object with sorted keys, absent (nil) addresses encoded as
// null and every other address, the empty one included, as a string.
func Encode(nonce uint64, timestamp string, txs []Transaction, prevHash string) []byte {
	ctxs := make([]canonicalTransaction, len(txs))
	for i, tx := range txs {
		ctxs[i] = canonicalTransaction{
			Amount: tx.Amount,
			From:   (*string)(tx.From),
			To:     (*string)(tx.To),
		}
	}
	// Marshalling plain structs of strings and integers cannot fail.
	data, _ := json.Marshal(canonicalBlock{
		Nonce:        nonce,
		PrevHash:     prevHash,
		Timestamp:    timestamp,
		Transactions: ctxs,
		Version:      CodecVersion,
	})
	return data
}

// Digest computes the lowercase hex SHA-256 of the canonical encoding.
func Digest(nonce uint64, timestamp string, txs []Transaction, prevHash string) string {
	sum := sha256.Sum256(Encode(nonce, timestamp, txs, prevHash))
	return hex.EncodeToString(sum[:])
}
