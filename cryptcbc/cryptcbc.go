// Package cryptcbc reimplements the legacy Crypt::CBC encryption scheme
// used for guardian-invitation tokens: OpenSSL-style salted key
// derivation with MD5, CBC block mode over DES or AES, pluggable
// padding, and the fixed "Salted__"/"RandomIV" header framing. Blobs
// produced here are byte-for-byte interchangeable with the legacy
// system's.
//
// The scheme is unauthenticated CBC. It carries no MAC and no integrity
// protection; that is a legacy wire-format constraint, and adding one
// would break compatibility. Do not use this package for new designs.
package cryptcbc

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// Config selects the cipher, framing, padding and key derivation for a
// Crypter. The zero value gives the legacy defaults: DES, salted header,
// standard padding, MD5 derivation.
type Config struct {
	// Cipher is the block cipher algorithm. Default AlgorithmDES.
	Cipher Algorithm
	// Header is the framing mode. Default HeaderSalt.
	Header HeaderMode
	// Padding is the padding method. Default PaddingStandard.
	Padding PaddingMethod
	// Derivation is the salted key derivation. Default DerivationMD5.
	// Only meaningful with HeaderSalt.
	Derivation Derivation
	// Iterations is the PBKDF2 round count. Default DefaultIterations.
	Iterations int
	// KeySize overrides the algorithm's natural key size in bytes.
	// Zero means the natural size (DES 8, AES 32).
	KeySize int
	// BlockSize, if set, must equal the algorithm's real block size.
	// It exists so callers can assert the size they framed for; a
	// mismatch is rejected rather than silently producing an
	// incompatible stream.
	BlockSize int
	// Salt fixes the 8-byte salt for HeaderSalt instead of drawing a
	// random one per call. Encryption becomes deterministic.
	Salt []byte
	// IV fixes the initialization vector. Required for HeaderNone,
	// optional for HeaderRandomIV, ignored for HeaderSalt.
	IV []byte
}

// Crypter encrypts and decrypts blobs in the legacy wire format. It is
// immutable after construction and safe for concurrent use.
type Crypter struct {
	passphrase []byte
	cipher     Algorithm
	header     HeaderMode
	padding    PaddingMethod
	derivation Derivation
	iterations int
	keySize    int
	blockSize  int
	salt       []byte
	iv         []byte
}

// New builds a Crypter for the passphrase. Every configuration problem
// is reported here as ErrValidation so that Encrypt and Decrypt only
// ever fail on input data.
func New(passphrase string, cfg Config) (*Crypter, error) {
	if cfg.Cipher == "" {
		cfg.Cipher = AlgorithmDES
	}
	if cfg.Header == "" {
		cfg.Header = HeaderSalt
	}
	if cfg.Padding == "" {
		cfg.Padding = PaddingStandard
	}
	if cfg.Derivation == "" {
		cfg.Derivation = DerivationMD5
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = DefaultIterations
	}

	sizes, ok := algorithmSizes[cfg.Cipher]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrValidation, cfg.Cipher)
	}
	keySize := sizes.keySize
	if cfg.KeySize != 0 {
		keySize = cfg.KeySize
	}
	if cfg.BlockSize != 0 && cfg.BlockSize != sizes.blockSize {
		return nil, fmt.Errorf("%w: %s block size is %d, not %d", ErrValidation, cfg.Cipher, sizes.blockSize, cfg.BlockSize)
	}

	switch cfg.Header {
	case HeaderSalt:
	case HeaderRandomIV:
		// The legacy randomiv header carries exactly 8 IV bytes.
		if sizes.blockSize != 8 {
			return nil, fmt.Errorf("%w: randomiv header requires an 8-byte block cipher", ErrValidation)
		}
	case HeaderNone:
		if cfg.IV == nil {
			return nil, fmt.Errorf("%w: header mode none requires an explicit IV", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported header mode %q", ErrValidation, cfg.Header)
	}

	switch cfg.Padding {
	case PaddingStandard, PaddingNull, PaddingSpace, PaddingNone:
	default:
		return nil, fmt.Errorf("%w: unsupported padding method %q", ErrValidation, cfg.Padding)
	}

	switch cfg.Derivation {
	case DerivationMD5:
	case DerivationPBKDF2:
		if cfg.Header != HeaderSalt {
			return nil, fmt.Errorf("%w: pbkdf2 derivation requires the salted header mode", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported derivation %q", ErrValidation, cfg.Derivation)
	}

	if cfg.Salt != nil && len(cfg.Salt) != saltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrValidation, saltSize, len(cfg.Salt))
	}
	if cfg.IV != nil && len(cfg.IV) != sizes.blockSize {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d", ErrValidation, sizes.blockSize, len(cfg.IV))
	}

	// Fail on impossible key sizes now rather than on first use.
	if _, err := newBlock(cfg.Cipher, make([]byte, keySize)); err != nil {
		return nil, fmt.Errorf("%w: %s does not accept a %d-byte key", ErrValidation, cfg.Cipher, keySize)
	}

	return &Crypter{
		passphrase: []byte(passphrase),
		cipher:     cfg.Cipher,
		header:     cfg.Header,
		padding:    cfg.Padding,
		derivation: cfg.Derivation,
		iterations: cfg.Iterations,
		keySize:    keySize,
		blockSize:  sizes.blockSize,
		salt:       cfg.Salt,
		iv:         cfg.IV,
	}, nil
}

// Encrypt pads the plaintext, encrypts it in CBC mode and returns the
// header and ciphertext concatenated. With no fixed salt or IV in the
// configuration a fresh random one is drawn per call, so output is
// non-deterministic, matching the legacy behavior.
func (c *Crypter) Encrypt(plaintext []byte) ([]byte, error) {
	var key, iv, header []byte

	switch c.header {
	case HeaderSalt:
		salt := c.salt
		if salt == nil {
			salt = make([]byte, saltSize)
			if _, err := io.ReadFull(rand.Reader, salt); err != nil {
				return nil, fmt.Errorf("failed to generate salt: %v", err)
			}
		}
		key, iv = c.saltedKeyIV(salt)
		header = writeHeader(HeaderSalt, salt)
	case HeaderRandomIV:
		key = passphraseKey(c.passphrase, c.keySize)
		iv = c.iv
		if iv == nil {
			iv = make([]byte, c.blockSize)
			if _, err := io.ReadFull(rand.Reader, iv); err != nil {
				return nil, fmt.Errorf("failed to generate IV: %v", err)
			}
		}
		header = writeHeader(HeaderRandomIV, iv)
	case HeaderNone:
		key = passphraseKey(c.passphrase, c.keySize)
		iv = c.iv
	}

	padded, err := pad(c.padding, plaintext, c.blockSize)
	if err != nil {
		return nil, err
	}

	block, err := newBlock(c.cipher, key)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return append(header, ciphertext...), nil
}

// Decrypt parses the header, re-derives the key, decrypts in CBC mode
// and strips padding. Framing that does not match the configuration is
// ErrFormat; no partial or fallback decryption is attempted.
func (c *Crypter) Decrypt(blob []byte) ([]byte, error) {
	saltOrIV, body, err := parseHeader(c.header, blob, c.blockSize)
	if err != nil {
		return nil, err
	}

	var key, iv []byte
	switch c.header {
	case HeaderSalt:
		key, iv = c.saltedKeyIV(saltOrIV)
	case HeaderRandomIV:
		key = passphraseKey(c.passphrase, c.keySize)
		iv = saltOrIV
	case HeaderNone:
		key = passphraseKey(c.passphrase, c.keySize)
		iv = c.iv
	}

	if len(body)%c.blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of block size %d", ErrFormat, len(body), c.blockSize)
	}

	block, err := newBlock(c.cipher, key)
	if err != nil {
		return nil, err
	}
	padded := make([]byte, len(body))
	if len(body) > 0 {
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, body)
	}

	return unpad(c.padding, padded, c.blockSize)
}

func (c *Crypter) saltedKeyIV(salt []byte) (key, iv []byte) {
	if c.derivation == DerivationPBKDF2 {
		return pbkdf2KeyIV(c.passphrase, salt, c.iterations, c.keySize, c.blockSize)
	}
	return saltedKeyIV(c.passphrase, salt, c.keySize, c.blockSize)
}

// EncryptHex encrypts and encodes the blob as a lowercase hex string.
func (c *Crypter) EncryptHex(plaintext []byte) (string, error) {
	blob, err := c.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(blob), nil
}

// DecryptHex decodes a hex string and decrypts it.
func (c *Crypter) DecryptHex(encoded string) ([]byte, error) {
	blob, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return c.Decrypt(blob)
}

// EncryptBase64 encrypts and encodes the blob as standard base64.
func (c *Crypter) EncryptBase64(plaintext []byte) (string, error) {
	blob, err := c.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptBase64 decodes a standard base64 string and decrypts it.
func (c *Crypter) DecryptBase64(encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return c.Decrypt(blob)
}
