package addrcheck

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	var o Oracle
	tests := []struct {
		name    string
		address string
		chainID uint64
		want    bool
	}{
		{"lower case", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", 1, true},
		{"upper case", "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", 1, true},
		{"eip55 checksum", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", 1, true},
		{"eip55 checksum broken", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD", 1, false},
		{"19 bytes", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea", 1, false},
		{"21 bytes", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed00", 1, false},
		{"empty", "0x", 1, false},
		{"no prefix", "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", 1, false},
		{"upper prefix", "0X5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", 1, false},
		{"non hex", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beazz", 1, false},
		{"zero address", "0x" + strings.Repeat("0", 40), 1, false},
		{"rsk checksum", "0x5aaEB6053f3e94c9b9a09f33669435E7ef1bEAeD", 30, true},
		{"eip55 checksum on rsk", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", 30, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.IsValidAddress(tt.address, tt.chainID), tt.name)
	}
}

func TestToChecksumMatchesEIP55(t *testing.T) {
	for _, addr := range []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	} {
		assert.Equal(t, addr, ToChecksum(strings.ToLower(addr), 1))
		assert.Equal(t, common.HexToAddress(addr).Hex(), ToChecksum(addr, 1))
	}
}

func TestToChecksumEIP1191(t *testing.T) {
	// Vectors from EIP-1191.
	assert.Equal(t, "0x5aaEB6053f3e94c9b9a09f33669435E7ef1bEAeD", ToChecksum("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", 30))
	assert.Equal(t, "0x5aAeb6053F3e94c9b9A09F33669435E7EF1BEaEd", ToChecksum("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", 31))
}
