package cryptography
import (
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	// first bytes of every envelope blob
	MagicHeader = []byte("STEG")
)

const (
	MagicSize = 4
	SymKeySize = chacha20poly1305.KeySize
	SaltSize = 16
	NonceSize = chacha20poly1305.NonceSize
	TagSize = chacha20poly1305.Overhead

	// everything around the plaintext: magic + salt + nonce + auth tag
	EnvelopeOverhead = MagicSize + SaltSize + NonceSize + TagSize

	// argon2id parameters.
	// the draft RFC recommends time=3, and memory=32*1024 (32 MB) is a sensible number.
	// lanes are pinned instead of runtime.NumCPU(): the derived key has to come out
	// the same on whatever machine extracts the payload.
	KdfTime = 3
	KdfMemory = 32 * 1024
	KdfLanes = 4
)
