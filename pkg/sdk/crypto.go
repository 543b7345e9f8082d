package sdk

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// payloadCipher applies AES-256-GCM to packed payloads so job arguments and
// results are opaque to the control plane. Encryption always uses the first
// key; decryption tries every key in order, which lets workers rotate keys
// without a flag day. A nil cipher passes payloads through untouched.
type payloadCipher struct {
	keys [][]byte
}

func newPayloadCipher(keys [][]byte) (*payloadCipher, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	for i, k := range keys {
		if len(k) != 32 {
			return nil, fmt.Errorf("op=cipher.new: key %d is %d bytes, want exactly 32", i, len(k))
		}
	}
	return &payloadCipher{keys: keys}, nil
}

func (c *payloadCipher) Encrypt(plain []byte) ([]byte, error) {
	if c == nil {
		return plain, nil
	}
	gcm, err := newGCM(c.keys[0])
	if err != nil {
		return nil, fmt.Errorf("op=cipher.encrypt: %w", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("op=cipher.encrypt: %w", err)
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

// Decrypt tries each configured key and returns the first clean open.
func (c *payloadCipher) Decrypt(data []byte) ([]byte, error) {
	if c == nil {
		return data, nil
	}
	var lastErr error
	for _, key := range c.keys {
		gcm, err := newGCM(key)
		if err != nil {
			lastErr = err
			continue
		}
		n := gcm.NonceSize()
		if len(data) < n {
			lastErr = errors.New("payload shorter than nonce")
			continue
		}
		plain, err := gcm.Open(nil, data[:n], data[n:], nil)
		if err == nil {
			return plain, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("op=cipher.decrypt: no key opened the payload: %w", lastErr)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
