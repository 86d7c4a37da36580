package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors. Every failure is surfaced immediately and
// atomically; no operation leaves partial state behind.
var (
	ErrInvalidParameter  = errors.Register(ModuleName, 2, "invalid parameter")
	ErrWrongFee          = errors.Register(ModuleName, 3, "fee rate out of allowed range")
	ErrReservesEmpty     = errors.Register(ModuleName, 4, "pool reserves are empty")
	ErrOperationOverflow = errors.Register(ModuleName, 5, "operation overflows 64-bit range")
	ErrComputation       = errors.Register(ModuleName, 6, "invariant check failed")
	ErrPermissionDenied  = errors.Register(ModuleName, 7, "unauthorized")
	ErrNotEnoughBalance  = errors.Register(ModuleName, 8, "insufficient balance")
	ErrCoinNotRegistered = errors.Register(ModuleName, 9, "coin not registered with the ledger")
	ErrPoolFrozen        = errors.Register(ModuleName, 10, "pool is frozen")
	ErrSlippageLimit     = errors.Register(ModuleName, 11, "output below slippage limit")
	ErrPoolNotFound      = errors.Register(ModuleName, 12, "pool not found")
	ErrPoolDuplicate     = errors.Register(ModuleName, 13, "pool already exists")
)
