package stegano
import (
	"covert/cryptography"
	"covert/stegano/audio"
	"covert/stegano/img"
)

/*
 * the operations exposed to a host application. raw bytes in, raw bytes
 * out: any transport encoding (base64 and the like) belongs to the caller.
 *
 * every call is a stateless in-memory transformation, nothing is cached
 * between calls and failures never produce partial output.
 */

// encrypt message with the passphrase and hide the envelope in the image.
// the result is re-encoded in the carrier's own lossless format.
func EmbedImage( decoy []byte, message string, passphrase string ) ([]byte, error) {
	blob, err := cryptography.EncryptMessage( message, passphrase )
	if err != nil {
		return nil, err
	}
	return img.Hide( decoy, blob )
}

func ExtractImage( decoy []byte, passphrase string ) (string, error) {
	blob, err := img.Reveal( decoy )
	if err != nil {
		return "", err
	}
	return cryptography.DecryptMessage( blob, passphrase )
}

func EmbedAudio( decoy []byte, message string, passphrase string ) ([]byte, error) {
	blob, err := cryptography.EncryptMessage( message, passphrase )
	if err != nil {
		return nil, err
	}
	return audio.Hide( decoy, blob )
}

func ExtractAudio( decoy []byte, passphrase string ) (string, error) {
	blob, err := audio.Reveal( decoy )
	if err != nil {
		return "", err
	}
	return cryptography.DecryptMessage( blob, passphrase )
}
