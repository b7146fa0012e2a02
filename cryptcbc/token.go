package cryptcbc

// Guardian-invitation tokens embed a numeric record identifier in a URL.
// The pairing below (DES, salted header, standard padding, hex transport)
// is what the legacy system produces and consumes; it is fixed on purpose
// and must not be reconfigured at call sites.

// EncryptGuardianToken encrypts a record identifier into a hex token.
func EncryptGuardianToken(plaintext, passphrase string) (string, error) {
	c, err := New(passphrase, Config{
		Cipher: AlgorithmDES,
		Header: HeaderSalt,
	})
	if err != nil {
		return "", err
	}
	return c.EncryptHex([]byte(plaintext))
}

// DecryptGuardianToken recovers the record identifier from a hex token.
// A token that is not valid hex or does not carry the salted header is
// ErrFormat; the caller treats that as an invalid or tampered invite.
func DecryptGuardianToken(encrypted, passphrase string) (string, error) {
	c, err := New(passphrase, Config{
		Cipher: AlgorithmDES,
		Header: HeaderSalt,
	})
	if err != nil {
		return "", err
	}
	plaintext, err := c.DecryptHex(encrypted)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
