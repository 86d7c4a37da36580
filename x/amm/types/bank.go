package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Bank accumulates treasury-bound fees for one token denom. A single bank is
// shared by every pool trading that denom; the surrounding execution
// environment serializes access per denom the same way it does per pool.
type Bank struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`

	// LastSnapshotTime gates periodic balance snapshot events, unix seconds.
	LastSnapshotTime uint64 `json:"last_snapshot_time"`
}

// NewBank returns an empty bank for a denom.
func NewBank(denom string) Bank {
	return Bank{Denom: denom}
}

// Validate checks internal consistency; used at genesis import.
func (b Bank) Validate() error {
	if b.Denom == "" {
		return sdkerrors.Wrap(ErrInvalidParameter, "bank denom cannot be empty")
	}
	return nil
}
