package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := generateSalt()
	require.NoError(t, err)
	s2, err := generateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 16)
	assert.Len(t, s2, 16)
	assert.False(t, bytes.Equal(s1, s2), "expected salts to differ")
}

func TestDeriveKey_PBKDF2_Deterministic(t *testing.T) {
	kc := newKeyChain(KDFPBKDF2, MinPBKDF2Iterations)
	salt := []byte("0123456789abcdef")

	k1 := kc.deriveKey("correct horse", salt)
	k2 := kc.deriveKey("correct horse", salt)
	k3 := kc.deriveKey("correct horse", []byte("fedcba9876543210"))
	k4 := kc.deriveKey("battery staple", salt)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)
}

func TestDeriveKey_Argon2id_Deterministic(t *testing.T) {
	kc := newKeyChain(KDFArgon2id, 0)
	salt := []byte("0123456789abcdef")

	k1 := kc.deriveKey("pw", salt)
	k2 := kc.deriveKey("pw", salt)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, newKeyChain(KDFPBKDF2, MinPBKDF2Iterations).deriveKey("pw", salt))
}

func TestNewKeyChain_IterationsFloor(t *testing.T) {
	assert.Equal(t, DefaultPBKDF2Iterations, newKeyChain(KDFPBKDF2, 10).iterations)
	assert.Equal(t, 5000, newKeyChain(KDFPBKDF2, 5000).iterations)
	assert.Equal(t, KDFPBKDF2, newKeyChain("", 0).kdf)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)

	ct, err := seal(key, []byte("dear diary"))
	require.NoError(t, err)

	pt, err := open(key, ct)
	require.NoError(t, err)
	assert.Equal(t, "dear diary", string(pt))
}

func TestSeal_NonceIsRandom(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)

	c1, err := seal(key, []byte("same"))
	require.NoError(t, err)
	c2, err := seal(key, []byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2)
}

func TestOpen_Failures(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)
	other := bytes.Repeat([]byte{8}, 32)
	ct, err := seal(key, []byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name string
		key  []byte
		blob string
	}{
		{name: "wrong key", key: other, blob: ct},
		{name: "not base64", key: key, blob: "%%%"},
		{name: "too short", key: key, blob: "AAAA"},
		{name: "tampered", key: key, blob: strings.ToUpper(ct[:4]) + ct[4:] + "AA"},
		{name: "bad key length", key: []byte("short"), blob: ct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := open(tt.key, tt.blob)
			assert.Error(t, err)
		})
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
	wipe(nil)
}
