// Package addrcheck decides whether a hex string is an acceptable
// destination address on a given chain.
package addrcheck

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/SipengXie/txkit/params"
	"golang.org/x/crypto/sha3"
)

const addressHexLength = 40

var zeroAddress = "0x" + strings.Repeat("0", addressHexLength)

// Oracle validates addresses per network rules. The zero value is ready
// to use.
type Oracle struct{}

// IsValidAddress reports whether address is a 0x prefixed 20 byte address
// acceptable on chainID. All lower or all upper case hex is accepted, mixed
// case must match the chain's checksum. The zero address is rejected as a
// likely burn.
func (Oracle) IsValidAddress(address string, chainID uint64) bool {
	if len(address) != 2+addressHexLength || !strings.HasPrefix(address, "0x") {
		return false
	}
	body := address[2:]
	if _, err := hex.DecodeString(body); err != nil {
		return false
	}
	if strings.EqualFold(address, zeroAddress) {
		return false
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return address == ToChecksum(address, chainID)
}

// ToChecksum renders a 20 byte hex address in mixed case checksum form:
// EIP-1191 on chains that require it, EIP-55 everywhere else. The input
// is expected to have been shape checked.
func ToChecksum(address string, chainID uint64) string {
	lower := strings.ToLower(strings.TrimPrefix(address, "0x"))
	prefix := ""
	if params.ChainConfigByID(chainID).ChecksumEIP1191 {
		prefix = strconv.FormatUint(chainID, 10) + "0x"
	}
	sha := sha3.NewLegacyKeccak256()
	sha.Write([]byte(prefix + lower))
	digest := hex.EncodeToString(sha.Sum(nil))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && digest[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}
