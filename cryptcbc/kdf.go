package cryptcbc

import (
	"crypto/md5"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Derivation names the passphrase-to-key derivation used for the salted
// header mode.
type Derivation string

const (
	// DerivationMD5 is the legacy OpenSSL EVP_BytesToKey construction
	// with MD5. It is the default and the only derivation the legacy
	// system ever produced.
	DerivationMD5 Derivation = "md5"
	// DerivationPBKDF2 is PBKDF2-HMAC-SHA256 over passphrase and salt,
	// matching OpenSSL's `enc -pbkdf2`. Opt-in only; blobs written with
	// it are not readable by the legacy system.
	DerivationPBKDF2 Derivation = "pbkdf2"
)

// DefaultIterations is the PBKDF2 round count, matching the OpenSSL
// default for `enc -pbkdf2`.
const DefaultIterations = 10000

// saltedKeyIV derives a key and IV from a passphrase and an 8-byte salt
// using OpenSSL's EVP_BytesToKey with MD5: D_1 = MD5(pass||salt),
// D_i = MD5(D_{i-1}||pass||salt), concatenated until keySize+blockSize
// bytes are available. The iteration order is load-bearing for
// compatibility and is pinned by golden vectors in the tests.
func saltedKeyIV(passphrase, salt []byte, keySize, blockSize int) (key, iv []byte) {
	var material, d []byte
	for len(material) < keySize+blockSize {
		h := md5.New()
		h.Write(d)
		h.Write(passphrase)
		h.Write(salt)
		d = h.Sum(nil)
		material = append(material, d...)
	}
	return material[:keySize], material[keySize : keySize+blockSize]
}

// pbkdf2KeyIV derives a key and IV from one PBKDF2-HMAC-SHA256 buffer,
// the way OpenSSL's `enc -pbkdf2` splits its derived bytes.
func pbkdf2KeyIV(passphrase, salt []byte, iterations, keySize, blockSize int) (key, iv []byte) {
	material := pbkdf2.Key(passphrase, salt, iterations, keySize+blockSize, sha256.New)
	return material[:keySize], material[keySize : keySize+blockSize]
}

// passphraseKey derives a key (no IV) by iterating MD5 over the
// passphrase: material = MD5(pass); material += MD5(material) until
// keySize bytes are available. Used by the randomiv and none header
// modes, where the IV travels separately.
func passphraseKey(passphrase []byte, keySize int) []byte {
	sum := md5.Sum(passphrase)
	material := sum[:]
	for len(material) < keySize {
		next := md5.Sum(material)
		material = append(material, next[:]...)
	}
	return material[:keySize]
}
