package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptySecret(t *testing.T) {
	cipher, err := New("")
	require.Error(t, err)
	assert.Nil(t, cipher)
}

func TestNew_Base64Key(t *testing.T) {
	key := make([]byte, keyLength)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cipher, err := New(base64.URLEncoding.EncodeToString(key))
	require.NoError(t, err)
	require.NotNil(t, cipher)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	cipher, err := New("some-passphrase")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"short", "hello"},
		{"unicode", "今日は火曜日です"},
		{"multiline", "user: hello\nassistant: hi there"},
		{"long", string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, version, err := cipher.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, Version, version)
			assert.NotEqual(t, tt.plaintext, ciphertext)

			decrypted, err := cipher.Decrypt(ciphertext, version)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestEncrypt_EmptyPassthrough(t *testing.T) {
	cipher, err := New("some-passphrase")
	require.NoError(t, err)

	ciphertext, version, err := cipher.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", ciphertext)
	assert.Equal(t, Version, version)

	decrypted, err := cipher.Decrypt("", version)
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	cipher, err := New("some-passphrase")
	require.NoError(t, err)

	first, _, err := cipher.Encrypt("hello")
	require.NoError(t, err)
	second, _, err := cipher.Encrypt("hello")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecrypt_UnknownVersion(t *testing.T) {
	cipher, err := New("some-passphrase")
	require.NoError(t, err)

	ciphertext, _, err := cipher.Encrypt("hello")
	require.NoError(t, err)

	_, err = cipher.Decrypt(ciphertext, "v2")
	assert.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	first, err := New("some-passphrase")
	require.NoError(t, err)
	second, err := New("another-passphrase")
	require.NoError(t, err)

	ciphertext, version, err := first.Encrypt("hello")
	require.NoError(t, err)

	_, err = second.Decrypt(ciphertext, version)
	assert.Error(t, err)
}

func TestDecrypt_Garbage(t *testing.T) {
	cipher, err := New("some-passphrase")
	require.NoError(t, err)

	_, err = cipher.Decrypt("not valid base64 !!!", Version)
	assert.Error(t, err)

	_, err = cipher.Decrypt(base64.RawURLEncoding.EncodeToString([]byte("ab")), Version)
	assert.Error(t, err)
}
