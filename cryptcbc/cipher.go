package cryptcbc

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"
)

// Algorithm names the block cipher used by the engine. The set is closed:
// only the two algorithms the legacy wire format ever used are supported,
// and adding one is a compatibility-affecting change.
type Algorithm string

const (
	// AlgorithmDES is single DES with an 8-byte key and 8-byte blocks.
	// This is the legacy default and the only algorithm the guardian
	// token format uses.
	AlgorithmDES Algorithm = "DES"
	// AlgorithmAES is AES-256 by default (32-byte key, 16-byte blocks).
	AlgorithmAES Algorithm = "AES"
)

// cipherSizes holds the natural key and block sizes of an algorithm.
type cipherSizes struct {
	keySize   int
	blockSize int
}

var algorithmSizes = map[Algorithm]cipherSizes{
	AlgorithmDES: {keySize: 8, blockSize: 8},
	AlgorithmAES: {keySize: 32, blockSize: 16},
}

// newBlock constructs the underlying block cipher for the algorithm.
func newBlock(alg Algorithm, key []byte) (cipher.Block, error) {
	switch alg {
	case AlgorithmDES:
		block, err := des.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return block, nil
	case AlgorithmAES:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return block, nil
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrValidation, alg)
	}
}
