package cryptcbc

import (
	"bytes"
	"crypto/subtle"
	"fmt"
)

// PaddingMethod names the scheme used to fill plaintext to a block
// boundary before encryption.
type PaddingMethod string

const (
	// PaddingStandard is PKCS#7-style byte padding: n bytes of value n.
	// Block-aligned input still receives a full block of padding.
	PaddingStandard PaddingMethod = "standard"
	// PaddingNull fills with 0x00 bytes. Lossy when the plaintext itself
	// ends in 0x00; kept for legacy-format compatibility only.
	PaddingNull PaddingMethod = "null"
	// PaddingSpace fills with ASCII spaces. Lossy when the plaintext
	// ends in a space; kept for legacy-format compatibility only.
	PaddingSpace PaddingMethod = "space"
	// PaddingNone performs no padding; the caller must supply
	// block-aligned input.
	PaddingNone PaddingMethod = "none"
)

// pad fills data to a multiple of blockSize according to the method.
func pad(method PaddingMethod, data []byte, blockSize int) ([]byte, error) {
	switch method {
	case PaddingStandard:
		n := blockSize - len(data)%blockSize
		padded := make([]byte, len(data)+n)
		copy(padded, data)
		for i := len(data); i < len(padded); i++ {
			padded[i] = byte(n)
		}
		return padded, nil
	case PaddingNull:
		return padWithByte(data, blockSize, 0x00), nil
	case PaddingSpace:
		return padWithByte(data, blockSize, 0x20), nil
	case PaddingNone:
		if len(data)%blockSize != 0 {
			return nil, fmt.Errorf("%w: data length %d is not a multiple of block size %d", ErrPadding, len(data), blockSize)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unsupported padding method %q", ErrValidation, method)
	}
}

// unpad reverses pad. For the standard method the check is defensive:
// inconsistent padding returns the data unchanged instead of failing,
// matching the legacy decoder, and every candidate padding byte is
// examined so that bad padding takes as long as good padding.
func unpad(method PaddingMethod, data []byte, blockSize int) ([]byte, error) {
	switch method {
	case PaddingStandard:
		if len(data) == 0 {
			return data, nil
		}
		n := int(data[len(data)-1])
		if n == 0 || n > blockSize || n > len(data) {
			return data, nil
		}
		ok := 1
		for _, b := range data[len(data)-n:] {
			ok &= subtle.ConstantTimeByteEq(b, byte(n))
		}
		if ok != 1 {
			return data, nil
		}
		return data[:len(data)-n], nil
	case PaddingNull:
		return bytes.TrimRight(data, "\x00"), nil
	case PaddingSpace:
		return bytes.TrimRight(data, " "), nil
	case PaddingNone:
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unsupported padding method %q", ErrValidation, method)
	}
}

func padWithByte(data []byte, blockSize int, fill byte) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = fill
	}
	return padded
}
