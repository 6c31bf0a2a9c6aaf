// Package ledger implements an append-only proof-of-work ledger of value
// transfers.
//
// # Core Components
//
// Transaction: A value transfer between two opaque addresses. A transaction
// without a source address is a reward and only credits its destination.
//
// Block: An ordered set of transactions bound to its predecessor through the
// predecessor's hash. A block mines itself by searching for a nonce whose
// digest starts with the required number of zero hex digits.
//
// Ledger: The chain of blocks together with the pool of pending
// transactions. Mining a block moves the pending pool into a new block and
// queues the miner's reward for the next one.
//
// # Security Properties
//
// The ledger provides:
//   - Content integrity: every block hash is the digest of its own fields
//   - Link integrity: every block references the hash of its predecessor
//   - Proof of work: every mined block hash satisfies the ledger difficulty
//
// None of these are enforced structurally. Verify and IsValid detect
// tampering after the fact.
//
// # Balances
//
// BalanceOf replays every transaction in the chain. Overdrafts are not
// prevented and negative balances are reported as they are.
package ledger
