package sdk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	k := make([]byte, 32)
	for i := range k {
		k[i] = b
	}
	return k
}

func TestPayloadCipherRoundTrip(t *testing.T) {
	c, err := newPayloadCipher([][]byte{testKey(1)})
	require.NoError(t, err)
	require.NotNil(t, c)

	plain := []byte("the payload")
	sealed, err := c.Encrypt(plain)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(sealed, plain))

	got, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestPayloadCipherRejectsBadKeyLength(t *testing.T) {
	_, err := newPayloadCipher([][]byte{[]byte("short")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 32")

	_, err = newPayloadCipher([][]byte{testKey(1), make([]byte, 31)})
	require.Error(t, err)
}

func TestPayloadCipherKeyRotation(t *testing.T) {
	oldCipher, err := newPayloadCipher([][]byte{testKey(1)})
	require.NoError(t, err)
	sealed, err := oldCipher.Encrypt([]byte("rotated"))
	require.NoError(t, err)

	// New primary key first, retired key still accepted.
	rotated, err := newPayloadCipher([][]byte{testKey(2), testKey(1)})
	require.NoError(t, err)
	got, err := rotated.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("rotated"), got)
}

func TestPayloadCipherDetectsTampering(t *testing.T) {
	c, err := newPayloadCipher([][]byte{testKey(1)})
	require.NoError(t, err)
	sealed, err := c.Encrypt([]byte("intact"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = c.Decrypt(sealed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key opened the payload")
}

func TestPayloadCipherNilPassthrough(t *testing.T) {
	var c *payloadCipher

	sealed, err := c.Encrypt([]byte("clear"))
	require.NoError(t, err)
	assert.Equal(t, []byte("clear"), sealed)

	got, err := c.Decrypt([]byte("clear"))
	require.NoError(t, err)
	assert.Equal(t, []byte("clear"), got)
}
