// cbctool encrypts and decrypts blobs in the legacy CBC wire format from
// the command line. It exists for support work: inspecting guardian
// tokens, reproducing blobs from the old system, and checking that both
// sides derive the same bytes.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"guardcrypt/cryptcbc"
)

const passphraseEnv = "CBCTOOL_PASSPHRASE"

var (
	flagPassphrase string
	flagCipher     string
	flagHeader     string
	flagPadding    string
	flagDerivation string
	flagSalt       string
	flagIV         string
	flagBase64     bool
)

func main() {
	root := &cobra.Command{
		Use:           "cbctool",
		Short:         "Encrypt and decrypt legacy Crypt-CBC blobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagPassphrase, "passphrase", "p", "", "passphrase (or set "+passphraseEnv+")")

	encryptCmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Encrypt a plaintext into an encoded blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCrypter()
			if err != nil {
				return err
			}
			if flagBase64 {
				out, err := c.EncryptBase64([]byte(args[0]))
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}
			out, err := c.EncryptHex([]byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	decryptCmd := &cobra.Command{
		Use:   "decrypt <encoded>",
		Short: "Decrypt an encoded blob back to plaintext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCrypter()
			if err != nil {
				return err
			}
			var plaintext []byte
			if flagBase64 {
				plaintext, err = c.DecryptBase64(args[0])
			} else {
				plaintext, err = c.DecryptHex(args[0])
			}
			if err != nil {
				return err
			}
			os.Stdout.Write(plaintext)
			fmt.Println()
			return nil
		},
	}

	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().StringVar(&flagCipher, "cipher", "DES", "block cipher (DES or AES)")
		cmd.Flags().StringVar(&flagHeader, "header", "salt", "header mode (salt, randomiv, none)")
		cmd.Flags().StringVar(&flagPadding, "padding", "standard", "padding method (standard, null, space, none)")
		cmd.Flags().StringVar(&flagDerivation, "derivation", "md5", "key derivation (md5 or pbkdf2)")
		cmd.Flags().StringVar(&flagSalt, "salt", "", "fixed 8-byte salt as hex (salted mode only)")
		cmd.Flags().StringVar(&flagIV, "iv", "", "IV as hex (required for header mode none)")
		cmd.Flags().BoolVar(&flagBase64, "base64", false, "use base64 instead of hex for the outer encoding")
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Work with guardian-invitation tokens (fixed production pairing)",
	}
	tokenCmd.AddCommand(
		&cobra.Command{
			Use:   "encrypt <identifier>",
			Short: "Encrypt a record identifier into a guardian token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := cryptcbc.EncryptGuardianToken(args[0], passphrase())
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "decrypt <token>",
			Short: "Recover the record identifier from a guardian token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := cryptcbc.DecryptGuardianToken(args[0], passphrase())
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			},
		},
	)

	root.AddCommand(encryptCmd, decryptCmd, tokenCmd)

	if err := root.Execute(); err != nil {
		log.Fatalf("cbctool: %v", err)
	}
}

func passphrase() string {
	if flagPassphrase != "" {
		return flagPassphrase
	}
	return os.Getenv(passphraseEnv)
}

func newCrypter() (*cryptcbc.Crypter, error) {
	cfg := cryptcbc.Config{
		Cipher:     cryptcbc.Algorithm(flagCipher),
		Header:     cryptcbc.HeaderMode(flagHeader),
		Padding:    cryptcbc.PaddingMethod(flagPadding),
		Derivation: cryptcbc.Derivation(flagDerivation),
	}
	if flagSalt != "" {
		salt, err := hex.DecodeString(flagSalt)
		if err != nil {
			return nil, fmt.Errorf("invalid --salt hex: %v", err)
		}
		cfg.Salt = salt
	}
	if flagIV != "" {
		iv, err := hex.DecodeString(flagIV)
		if err != nil {
			return nil, fmt.Errorf("invalid --iv hex: %v", err)
		}
		cfg.IV = iv
	}
	return cryptcbc.New(passphrase(), cfg)
}
