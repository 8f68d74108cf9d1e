package util
import (
	"errors"
)

/*
 * the full set of failures the codec can return.
 * callers are expected to match with errors.Is() and handle every kind;
 * anything that is not one of these is a carrier codec error passed through
 * verbatim.
 */
var (
	// payload (after encryption) does not fit into the carrier
	ErrMessageTooLarge = errors.New("message too large for carrier")

	// carrier holds no plausible hidden payload: bad magic bytes,
	// zero or oversized length field, not enough samples/pixels.
	// distinct from corruption of a payload that is present.
	ErrNoMessageFound = errors.New("no hidden message found")

	// envelope blob shorter than its fixed header, or decrypted
	// bytes that are not valid utf-8
	ErrInvalidFormat = errors.New("invalid message format")

	// aead authentication failed. wrong passphrase and tampered
	// ciphertext are indistinguishable on purpose.
	ErrDecryptionFailed = errors.New("decryption failed - wrong passphrase or corrupted data")

	// unexpected failure inside key derivation or cipher setup
	ErrEncryptionError = errors.New("encryption error")

	// pcm bit depth outside 8/16/24/32
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
)
