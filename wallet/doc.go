// Package wallet generates account addresses for the ledger.
//
// An address is the hex encoding of an Ed25519 public key. The ledger itself
// treats addresses as opaque strings and never checks them; ParseAddress is
// for callers that only want to accept wallet generated addresses.
package wallet
