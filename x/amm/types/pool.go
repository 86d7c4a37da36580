package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
)

// PoolType selects the pricing curve a pool was created with.
type PoolType uint32

const (
	// PoolTypeStandard is the constant-product curve.
	PoolTypeStandard PoolType = 0

	// PoolTypeStableSwap carries amplification and decimal-scaling fields.
	// Pricing currently falls through to the constant-product formula; the
	// fields are validated at creation and stored for a future curve.
	PoolTypeStableSwap PoolType = 1
)

// Validate checks that the pool type is a recognized value.
func (t PoolType) Validate() error {
	switch t {
	case PoolTypeStandard, PoolTypeStableSwap:
		return nil
	}
	return sdkerrors.Wrapf(ErrInvalidParameter, "unknown pool type %d", t)
}

// FeeDirection fixes which side of the pair always carries the treasury fee.
type FeeDirection uint32

const (
	// FeeDirectionX collects the treasury fee on the X token.
	FeeDirectionX FeeDirection = 0

	// FeeDirectionY collects the treasury fee on the Y token.
	FeeDirectionY FeeDirection = 1
)

// Validate checks that the fee direction is a recognized value.
func (d FeeDirection) Validate() error {
	switch d {
	case FeeDirectionX, FeeDirectionY:
		return nil
	}
	return sdkerrors.Wrapf(ErrInvalidParameter, "unknown fee direction %d", d)
}

const (
	// BpsDenominator is the fee-rate denominator: rates are basis points.
	BpsDenominator = 10000

	// BootstrapShares is the fixed number of LP shares minted on the first
	// deposit into an empty pool, independent of the deposited amounts.
	BootstrapShares = 1000

	// MaxTokenDecimals bounds the per-token decimal precision accepted for
	// stable-swap pools; scale factors align both sides to this base.
	MaxTokenDecimals = 18

	// TradeWindowSeconds is the length of the rolling trade-volume window.
	TradeWindowSeconds = 24 * 60 * 60

	// ReserveSnapshotInterval is the minimum spacing between reserve
	// snapshot events for one pool.
	ReserveSnapshotInterval = 15 * 60

	// BankSnapshotInterval is the minimum spacing between treasury balance
	// snapshot events for one bank.
	BankSnapshotInterval = 6 * 60 * 60
)

// PoolConfig carries the creation-time configuration of a pool. All fields
// are immutable after creation except the freeze flag.
type PoolConfig struct {
	PoolType     PoolType     `json:"pool_type"`
	FeeDirection FeeDirection `json:"fee_direction"`

	// Fee rates in basis points out of 10000.
	AdminFeeBps     uint32 `json:"admin_fee_bps"`
	LpFeeBps        uint32 `json:"lp_fee_bps"`
	IncentiveFeeBps uint32 `json:"incentive_fee_bps"`
	ConnectFeeBps   uint32 `json:"connect_fee_bps"`
	WithdrawFeeBps  uint32 `json:"withdraw_fee_bps"`

	// Stable-swap fields, ignored for standard pools.
	Amp       uint64 `json:"amp"`
	DecimalsX uint32 `json:"decimals_x"`
	DecimalsY uint32 `json:"decimals_y"`
}

// TradingFeeBps returns the combined per-swap fee rate.
func (c PoolConfig) TradingFeeBps() uint32 {
	return c.AdminFeeBps + c.LpFeeBps + c.IncentiveFeeBps + c.ConnectFeeBps
}

// Validate checks enum values and fee ranges.
func (c PoolConfig) Validate() error {
	if err := c.PoolType.Validate(); err != nil {
		return err
	}
	if err := c.FeeDirection.Validate(); err != nil {
		return err
	}
	if c.TradingFeeBps() >= BpsDenominator {
		return sdkerrors.Wrapf(ErrWrongFee, "trading fee sum %d bps must be below %d", c.TradingFeeBps(), BpsDenominator)
	}
	if c.WithdrawFeeBps >= BpsDenominator {
		return sdkerrors.Wrapf(ErrWrongFee, "withdraw fee %d bps must be below %d", c.WithdrawFeeBps, BpsDenominator)
	}
	if c.PoolType == PoolTypeStableSwap {
		if c.Amp == 0 {
			return sdkerrors.Wrap(ErrInvalidParameter, "amplification coefficient must be positive")
		}
		if c.DecimalsX > MaxTokenDecimals || c.DecimalsY > MaxTokenDecimals {
			return sdkerrors.Wrapf(ErrInvalidParameter, "token decimals must not exceed %d", MaxTokenDecimals)
		}
	}
	return nil
}

// Pool is the state of one liquidity pool over an ordered token pair (X, Y).
// Reserves and the LP share supply are 64-bit token amounts; all share and
// fee arithmetic runs on double-width intermediates and floors in the pool's
// favor.
type Pool struct {
	Id     uint64 `json:"id"`
	DenomX string `json:"denom_x"`
	DenomY string `json:"denom_y"`

	ReserveX uint64 `json:"reserve_x"`
	ReserveY uint64 `json:"reserve_y"`
	LpSupply uint64 `json:"lp_supply"`

	PoolType     PoolType     `json:"pool_type"`
	FeeDirection FeeDirection `json:"fee_direction"`

	AdminFeeBps     uint32 `json:"admin_fee_bps"`
	LpFeeBps        uint32 `json:"lp_fee_bps"`
	IncentiveFeeBps uint32 `json:"incentive_fee_bps"`
	ConnectFeeBps   uint32 `json:"connect_fee_bps"`
	WithdrawFeeBps  uint32 `json:"withdraw_fee_bps"`

	// Stable-swap parameters, carried but not consulted by pricing.
	Amp    uint64 `json:"amp"`
	ScaleX uint64 `json:"scale_x"`
	ScaleY uint64 `json:"scale_y"`

	Frozen bool `json:"frozen"`

	// Rolling trade accounting, all timestamps in unix seconds.
	LastTradeTime    uint64 `json:"last_trade_time"`
	WindowStartTime  uint64 `json:"window_start_time"`
	TradeX24h        uint64 `json:"trade_x_24h"`
	TradeY24h        uint64 `json:"trade_y_24h"`
	TotalTradeX      uint64 `json:"total_trade_x"`
	TotalTradeY      uint64 `json:"total_trade_y"`
	SnapshotLastTime uint64 `json:"snapshot_last_time"`

	Creator string `json:"creator"`
}

// ShareDenom returns the denom of this pool's LP share token.
func (p Pool) ShareDenom() string {
	return fmt.Sprintf("%s/pool/%d", ModuleName, p.Id)
}

// TreasuryFeeBps returns the fee rate routed out of the pool to the bank.
func (p Pool) TreasuryFeeBps() uint32 {
	return p.AdminFeeBps + p.ConnectFeeBps
}

// PoolFeeBps returns the fee rate that stays in the pool backing LP shares.
func (p Pool) PoolFeeBps() uint32 {
	return p.LpFeeBps + p.IncentiveFeeBps
}

// TreasuryDenom returns the denom that carries the treasury fee for every
// trade in this pool, fixed by the fee direction at creation.
func (p Pool) TreasuryDenom() string {
	if p.FeeDirection == FeeDirectionY {
		return p.DenomY
	}
	return p.DenomX
}

// Config reassembles the creation-time configuration (decimals excluded:
// only the derived scale factors are stored).
func (p Pool) Config() PoolConfig {
	return PoolConfig{
		PoolType:        p.PoolType,
		FeeDirection:    p.FeeDirection,
		AdminFeeBps:     p.AdminFeeBps,
		LpFeeBps:        p.LpFeeBps,
		IncentiveFeeBps: p.IncentiveFeeBps,
		ConnectFeeBps:   p.ConnectFeeBps,
		WithdrawFeeBps:  p.WithdrawFeeBps,
		Amp:             p.Amp,
	}
}

// Validate checks internal consistency; used at genesis import.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool id must be positive")
	}
	if p.DenomX == "" || p.DenomY == "" {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool denoms cannot be empty")
	}
	if p.DenomX == p.DenomY {
		return sdkerrors.Wrap(ErrInvalidParameter, "pool denoms must differ")
	}
	if err := p.PoolType.Validate(); err != nil {
		return err
	}
	if err := p.FeeDirection.Validate(); err != nil {
		return err
	}
	cfg := p.Config()
	if cfg.TradingFeeBps() >= BpsDenominator || p.WithdrawFeeBps >= BpsDenominator {
		return sdkerrors.Wrapf(ErrWrongFee, "pool %d fee rates out of range", p.Id)
	}
	if p.LpSupply > 0 && (p.ReserveX == 0 || p.ReserveY == 0) {
		return sdkerrors.Wrapf(ErrInvalidParameter, "pool %d has shares but an empty reserve", p.Id)
	}
	return nil
}
