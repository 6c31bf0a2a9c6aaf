package wallet

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/pow-ledger/ledger"
)

var suite suites.Suite = suites.MustFind("Ed25519")

var ErrMalformedAddress = errors.New("malformed address")

type Keypair struct {
	Private kyber.Scalar
	Public  kyber.Point
}

// NewKeypair picks a random private scalar and derives its public point.
func NewKeypair() *Keypair {
	private := suite.Scalar().Pick(suite.RandomStream())
	return &Keypair{
		Private: private,
		Public:  suite.Point().Mul(private, nil),
	}
}

// Address returns the hex encoded public key.
func (k *Keypair) Address() (ledger.Address, error) {
	b, err := k.Public.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal public key")
	}
	return ledger.Address(hex.EncodeToString(b)), nil
}

// PrivateHex returns the hex encoded private scalar.
func (k *Keypair) PrivateHex() (string, error) {
	b, err := k.Private.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal private key")
	}
	return hex.EncodeToString(b), nil
}

// NewAddress generates a fresh keypair and returns its address.
func NewAddress() (ledger.Address, error) {
	return NewKeypair().Address()
}

// ParseAddress checks that s is the hex encoding of a valid Ed25519 point.
func ParseAddress(s string) (ledger.Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Wrapf(ErrMalformedAddress, "%q is not hex: %v", s, err)
	}
	if len(b) != suite.PointLen() {
		return "", errors.Wrapf(ErrMalformedAddress, "expected %d bytes, got %d", suite.PointLen(), len(b))
	}
	if err := suite.Point().UnmarshalBinary(b); err != nil {
		return "", errors.Wrapf(ErrMalformedAddress, "%q is not a curve point: %v", s, err)
	}
	return ledger.Address(s), nil
}
