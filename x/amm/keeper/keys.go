package keeper

import (
	"encoding/binary"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolByPairKeyPrefix is the prefix for indexing pools by token pair
	PoolByPairKeyPrefix = []byte{0x02}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x03}

	// BankKeyPrefix is the prefix for treasury fee bank store keys
	BankKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// PoolByPairKey returns the store key for indexing a pool by its token pair.
// Denoms are sorted so lookup is order-independent.
func PoolByPairKey(denomA, denomB string) []byte {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	key := append(PoolByPairKeyPrefix, []byte(denomA)...)
	key = append(key, []byte("/")...)
	key = append(key, []byte(denomB)...)
	return key
}

// BankKey returns the store key for the treasury fee bank of a denom
func BankKey(denom string) []byte {
	return append(BankKeyPrefix, []byte(denom)...)
}
