// Package wallet contains the wallet ledger model: the append-only
// Transaction entry plus its type and status enumerations. The balance
// itself lives on the user row and is adjusted atomically by the
// persistence layer when a completed entry is recorded.
package wallet
