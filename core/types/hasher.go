package types

// ComputeIndexingHash returns the 0x prefixed keccak256 digest of the
// unsigned fields of in. Signature values never take part, so the same
// intent hashes identically before and after signing.
func ComputeIndexingHash(in TxInput) (string, error) {
	tx, err := MakeTransaction(in)
	if err != nil {
		return "", err
	}
	return tx.SigningHash().Hex(), nil
}
