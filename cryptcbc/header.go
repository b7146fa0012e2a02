package cryptcbc

import (
	"bytes"
	"fmt"
)

// HeaderMode selects what precedes the ciphertext on the wire.
type HeaderMode string

const (
	// HeaderSalt writes an 8-byte "Salted__" marker followed by the
	// 8-byte salt used for key derivation. This is the default and the
	// mode the guardian token format uses.
	HeaderSalt HeaderMode = "salt"
	// HeaderRandomIV writes an 8-byte "RandomIV" marker followed by the
	// IV. Only valid for 8-byte-block ciphers.
	HeaderRandomIV HeaderMode = "randomiv"
	// HeaderNone writes no header; the caller supplies the IV
	// out-of-band through the configuration.
	HeaderNone HeaderMode = "none"
)

const (
	markerSize = 8
	saltSize   = 8
)

var (
	saltMarker     = []byte("Salted__")
	randomIVMarker = []byte("RandomIV")
)

// writeHeader emits the header bytes for the mode. saltOrIV is the salt
// for HeaderSalt and the IV for HeaderRandomIV; HeaderNone emits nothing.
func writeHeader(mode HeaderMode, saltOrIV []byte) []byte {
	switch mode {
	case HeaderSalt:
		return append(append([]byte{}, saltMarker...), saltOrIV...)
	case HeaderRandomIV:
		return append(append([]byte{}, randomIVMarker...), saltOrIV...)
	default:
		return nil
	}
}

// parseHeader verifies the marker for the mode, splits off the salt or IV
// and returns the remaining ciphertext. A marker mismatch or a blob too
// short to hold the header is ErrFormat; framing that does not match is
// never decrypted.
func parseHeader(mode HeaderMode, blob []byte, blockSize int) (saltOrIV, body []byte, err error) {
	switch mode {
	case HeaderSalt:
		if len(blob) < markerSize+saltSize {
			return nil, nil, fmt.Errorf("%w: blob too short for salted header", ErrFormat)
		}
		if !bytes.Equal(blob[:markerSize], saltMarker) {
			return nil, nil, fmt.Errorf("%w: missing %q marker", ErrFormat, saltMarker)
		}
		return blob[markerSize : markerSize+saltSize], blob[markerSize+saltSize:], nil
	case HeaderRandomIV:
		if len(blob) < markerSize+blockSize {
			return nil, nil, fmt.Errorf("%w: blob too short for randomiv header", ErrFormat)
		}
		if !bytes.Equal(blob[:markerSize], randomIVMarker) {
			return nil, nil, fmt.Errorf("%w: missing %q marker", ErrFormat, randomIVMarker)
		}
		return blob[markerSize : markerSize+blockSize], blob[markerSize+blockSize:], nil
	default:
		return nil, blob, nil
	}
}
