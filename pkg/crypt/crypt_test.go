package crypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ciphertext, err := Encrypt("hello world")
	require.NoError(t, err)
	assert.NotEqual(t, "hello world", ciphertext)

	plain, err := Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "hello world", plain)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	_, err := Decrypt("not-ciphertext")
	assert.Error(t, err)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	a, err := Encrypt("same input")
	require.NoError(t, err)
	b, err := Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHMACVerify(t *testing.T) {
	sig := SignHMAC("order_123|pay_456", "topsecret")
	assert.True(t, VerifyHMAC("order_123|pay_456", sig, "topsecret"))
}

func TestHMACRejectsTamperedMessage(t *testing.T) {
	sig := SignHMAC("order_123|pay_456", "topsecret")
	assert.False(t, VerifyHMAC("order_999|pay_456", sig, "topsecret"))
}

func TestHMACRejectsWrongKey(t *testing.T) {
	sig := SignHMAC("order_123|pay_456", "topsecret")
	assert.False(t, VerifyHMAC("order_123|pay_456", sig, "other-key"))
}

func TestHMACRejectsBogusSignature(t *testing.T) {
	assert.False(t, VerifyHMAC("order_123|pay_456", "zzzz", "topsecret"))
}
