package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the AMM module
type Metrics struct {
	SwapsTotal            *prometheus.CounterVec
	SwapVolume            *prometheus.CounterVec
	TreasuryFeesCollected *prometheus.CounterVec

	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	PoolsCreated prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers AMM metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "direction"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pool_id", "denom"},
			),
			TreasuryFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "treasury_fees_collected_total",
					Help:      "Fees routed to the treasury banks",
				},
				[]string{"denom"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited into pools",
				},
				[]string{"pool_id", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn from pools",
				},
				[]string{"pool_id", "denom"},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "amm",
					Name:      "pools_created_total",
					Help:      "Total number of pools created",
				},
			),
		}
	})
	return metrics
}
