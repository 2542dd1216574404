package types

import "errors"

// ErrTransactionNotSanitized is returned by VersionedTransaction.Sanitize
// when a structural invariant of the transaction is violated.
var ErrTransactionNotSanitized = errors.New("types: transaction failed sanitize check")

// VersionedMessage is the minimal shape of a transaction's message that the
// blockstore reader needs: which accounts sign it, and how many. Full
// instruction/account-resolution decoding is out of scope for this
// repository (transaction semantic validation is a non-goal); this is only
// enough structure to support Sanitize and transaction identity.
type VersionedMessage struct {
	// Version is 0 for "legacy" messages, >=0 for versioned messages
	// carrying address table lookups.
	Version int8

	// NumRequiredSignatures is the number of signatures the message
	// declares it needs; Sanitize checks this against len(Signatures).
	NumRequiredSignatures uint8

	AccountKeys []Pubkey
}

// VersionedTransaction is a signed, possibly-versioned transaction as
// stored in an Entry.
type VersionedTransaction struct {
	Signatures []Signature
	Message    VersionedMessage
}

// ID returns the transaction's identity: its first signature. A
// transaction with no signatures (which Sanitize rejects) yields the zero
// Signature.
func (t VersionedTransaction) ID() Signature {
	if len(t.Signatures) == 0 {
		return Signature{}
	}
	return t.Signatures[0]
}

// Sanitize performs the structural validation the blockstore reader runs
// over every transaction it surfaces: it does not validate transaction
// semantics (that is an explicit non-goal), only the shape the protocol
// requires to even attempt execution.
func (t VersionedTransaction) Sanitize() error {
	if len(t.Signatures) == 0 {
		return ErrTransactionNotSanitized
	}
	if int(t.Message.NumRequiredSignatures) != len(t.Signatures) {
		return ErrTransactionNotSanitized
	}
	if len(t.Message.AccountKeys) < len(t.Signatures) {
		return ErrTransactionNotSanitized
	}
	return nil
}

// TransactionErrorCode identifies why a transaction failed to execute.
// The zero value means no error (successful execution).
type TransactionErrorCode string

// TransactionStatusMeta is the optional execution result of a transaction,
// persisted in the transaction_status column family.
type TransactionStatusMeta struct {
	Err  TransactionErrorCode
	Fee  uint64
	// PostBalances/PreBalances are omitted: this repository's read API
	// does not surface balance diffs, only status and error code.
}

// Succeeded reports whether the transaction executed without error.
func (m TransactionStatusMeta) Succeeded() bool {
	return m.Err == ""
}
