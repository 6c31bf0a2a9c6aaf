package ledger

import (
	"regexp"
	"strings"
	"testing"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func sampleTransactions() []Transaction {
	return []Transaction{
		NewReward("miner", 500),
		NewTransaction("alice", "bob", 42),
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	txs := sampleTransactions()
	first := Digest(7, "2024-01-01T00:00:00Z", txs, GenesisPrevHash)
	second := Digest(7, "2024-01-01T00:00:00Z", sampleTransactions(), GenesisPrevHash)
	if first != second {
		t.Fatalf("digest should be deterministic, got %s and %s", first, second)
	}
	if !hexDigest.MatchString(first) {
		t.Fatalf("digest should be 64 lowercase hex characters, got %q", first)
	}
}

func TestDigestChangesWithEveryField(t *testing.T) {
	const ts = "2024-01-01T00:00:00Z"
	base := Digest(7, ts, sampleTransactions(), GenesisPrevHash)

	mutations := map[string]func() string{
		"nonce": func() string {
			return Digest(8, ts, sampleTransactions(), GenesisPrevHash)
		},
		"timestamp": func() string {
			return Digest(7, "2024-01-01T00:00:01Z", sampleTransactions(), GenesisPrevHash)
		},
		"prev hash": func() string {
			prev := []byte(GenesisPrevHash)
			prev[63] = '1'
			return Digest(7, ts, sampleTransactions(), string(prev))
		},
		"amount": func() string {
			txs := sampleTransactions()
			txs[1].Amount = 43
			return Digest(7, ts, txs, GenesisPrevHash)
		},
		"from": func() string {
			txs := sampleTransactions()
			txs[1].From = Addr("carol")
			return Digest(7, ts, txs, GenesisPrevHash)
		},
		"to": func() string {
			txs := sampleTransactions()
			txs[0].To = Addr("other")
			return Digest(7, ts, txs, GenesisPrevHash)
		},
		"order": func() string {
			txs := sampleTransactions()
			txs[0], txs[1] = txs[1], txs[0]
			return Digest(7, ts, txs, GenesisPrevHash)
		},
		"dropped transaction": func() string {
			return Digest(7, ts, sampleTransactions()[:1], GenesisPrevHash)
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			if got := mutate(); got == base {
				t.Fatalf("changing the %s should change the digest", name)
			}
		})
	}
}

func TestEncodeIsCanonical(t *testing.T) {
	got := string(Encode(3, "06/07/2019", []Transaction{NewReward("m", 5)}, "abc"))
	expected := `{"nonce":3,"prev_hash":"abc","timestamp":"06/07/2019","transactions":[{"amount":5,"from":null,"to":"m"}],"v":1}`
	if got != expected {
		t.Fatalf("unexpected canonical encoding:\nexpected %s\ngot      %s", expected, got)
	}
}

func TestEncodeTreatsNilAndEmptyTransactionsAlike(t *testing.T) {
	if Digest(0, "t", nil, GenesisPrevHash) != Digest(0, "t", []Transaction{}, GenesisPrevHash) {
		t.Fatal("nil and empty transaction lists should hash the same")
	}
}

func TestGenesisPrevHash(t *testing.T) {
	if len(GenesisPrevHash) != HashLength || HashLength != 64 {
		t.Fatalf("genesis prev hash should be 64 characters, got %d", len(GenesisPrevHash))
	}
	for _, c := range GenesisPrevHash {
		if c != '0' {
			t.Fatalf("genesis prev hash should only contain zeros, got %q", GenesisPrevHash)
		}
	}
}

func TestEncodeDistinguishesEmptyFromAbsentAddress(t *testing.T) {
	absent := string(Encode(0, "t", []Transaction{NewReward("m", 5)}, "p"))
	empty := string(Encode(0, "t", []Transaction{NewTransaction("", "m", 5)}, "p"))

	if !strings.Contains(absent, `"from":null`) {
		t.Fatalf("absent source should encode as null, got %s", absent)
	}
	if !strings.Contains(empty, `"from":""`) {
		t.Fatalf("empty source should encode as an empty string, got %s", empty)
	}
	if Digest(0, "t", []Transaction{NewReward("m", 5)}, "p") == Digest(0, "t", []Transaction{NewTransaction("", "m", 5)}, "p") {
		t.Fatal("a reward and a transfer from the empty address should hash differently")
	}
}
