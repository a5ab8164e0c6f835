package stark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

func keccak(parts ...[]byte) (out Hash) {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	copy(out[:], h.Sum(nil))
	return out
}

func TestKeccakChannelMixRoot(t *testing.T) {
	var channel KeccakChannel
	assert.Equal(t, Hash{}, channel.Digest())

	var root Hash
	root[0] = 0x42
	channel.MixRoot(root)
	first := keccak(make([]byte, 32), root[:])
	assert.Equal(t, first, channel.Digest())

	var second Hash
	second[31] = 0x07
	channel.MixRoot(second)
	assert.Equal(t, keccak(first[:], second[:]), channel.Digest())
}
