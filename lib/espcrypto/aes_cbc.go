// Package espcrypto provides concrete implementations of the esp package's
// Encryptor, MAC, and RNG capability interfaces. The ESP padding codec
// already guarantees block alignment, so these primitives never pad on
// their own, and the MAC (ICV) size is configurable; the MAC hash is
// SHA-256.
package espcrypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/samber/oops"
)

// AESCBCEncryptor implements esp.Encryptor using AES-CBC without any
// self-padding; the caller (the ESP padding codec) guarantees block
// alignment before Encrypt/Decrypt are called.
type AESCBCEncryptor struct {
	key []byte
}

// NewAESCBCEncryptor returns an AESCBCEncryptor for a 16/24/32-byte AES
// key.
func NewAESCBCEncryptor(key []byte) (*AESCBCEncryptor, error) {
	if _, err := aes.NewCipher(key); err != nil {
		return nil, oops.Wrapf(err, "espcrypto: invalid AES key")
	}
	return &AESCBCEncryptor{key: key}, nil
}

// BlockSize returns AES's fixed 16-byte block size.
func (e *AESCBCEncryptor) BlockSize() int { return aes.BlockSize }

// IVSize returns the CBC IV size, equal to the block size.
func (e *AESCBCEncryptor) IVSize() int { return aes.BlockSize }

// Encrypt encrypts buf in place using iv. len(buf) must be a multiple of
// BlockSize().
func (e *AESCBCEncryptor) Encrypt(buf, iv []byte) error {
	if len(buf)%aes.BlockSize != 0 {
		return oops.Errorf("espcrypto: ciphertext length %d not a multiple of block size", len(buf))
	}
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return oops.Wrapf(err, "espcrypto: aes.NewCipher")
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(buf, buf)
	return nil
}

// Decrypt decrypts src (using iv) into dst. len(src) must equal len(dst)
// and be a multiple of BlockSize().
func (e *AESCBCEncryptor) Decrypt(dst, src, iv []byte) error {
	if len(src) != len(dst) || len(src)%aes.BlockSize != 0 {
		return oops.Errorf("espcrypto: decrypt length mismatch or unaligned")
	}
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return oops.Wrapf(err, "espcrypto: aes.NewCipher")
	}
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(dst, src)
	return nil
}
