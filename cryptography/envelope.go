package cryptography
import (
	"io"
	"fmt"
	"bytes"
	"unicode/utf8"
	"crypto/rand"
	"golang.org/x/crypto/chacha20poly1305"

	"covert/util"
)

/*
 * the envelope is the actual payload that gets embedded into a carrier:
 *
 *	MAGIC(4) || salt(16) || nonce(12) || ciphertext(+16 byte tag)
 *
 * salt and nonce are drawn fresh for every call, so key and nonce reuse
 * only happens with negligible probability. carriers treat the whole
 * thing as opaque bytes.
 */

// chacha20poly1305 encryption+authentication with a passphrase-derived key.
// the random source is explicit so tests can seed it.
func EncryptMessageRand( rng io.Reader, message string, passphrase string ) ([]byte, error) {

	salt := make( []byte, SaltSize )
	nonce := make( []byte, NonceSize )
	if _, err := io.ReadFull( rng, salt ); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrEncryptionError, err)
	}
	if _, err := io.ReadFull( rng, nonce ); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrEncryptionError, err)
	}

	key, err := DeriveKey( passphrase, salt )
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		// unreachable with a fixed-size derived key
		return nil, fmt.Errorf("%w: %v", util.ErrEncryptionError, err)
	}

	blob := make( []byte, 0, EnvelopeOverhead + len(message) )
	blob = append( blob, MagicHeader... )
	blob = append( blob, salt... )
	blob = append( blob, nonce... )
	blob = aead.Seal( blob, nonce, []byte(message), nil )
	return blob, nil
}

func EncryptMessage( message string, passphrase string ) ([]byte, error) {
	return EncryptMessageRand( rand.Reader, message, passphrase )
}

func DecryptMessage( blob []byte, passphrase string ) (string, error) {

	if len(blob) < MagicSize + SaltSize + NonceSize {
		return "", util.ErrInvalidFormat
	}
	if bytes.Equal( blob[:MagicSize], MagicHeader ) == false {
		// not our format at all, as opposed to our format with a bad key
		return "", util.ErrNoMessageFound
	}

	salt := blob[ MagicSize : MagicSize + SaltSize ]
	nonce := blob[ MagicSize + SaltSize : MagicSize + SaltSize + NonceSize ]
	ct := blob[ MagicSize + SaltSize + NonceSize : ]

	key, err := DeriveKey( passphrase, salt )
	if err != nil {
		return "", err
	}
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrEncryptionError, err)
	}

	pt, err := aead.Open( nil, nonce, ct, nil )
	if err != nil {
		// wrong passphrase and tampered data fail identically here.
		// keep it that way, splitting them would be an oracle.
		return "", util.ErrDecryptionFailed
	}
	if utf8.Valid( pt ) == false {
		// unreachable for blobs we produced ourselves
		return "", util.ErrInvalidFormat
	}
	return string(pt), nil
}
