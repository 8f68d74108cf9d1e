package cryptography
import (
	"fmt"
	"golang.org/x/crypto/argon2"

	"covert/util"
)

// derive the symmetric encryption key from a passphrase and a salt.
// deterministic: the same pair always yields the same key.
func DeriveKey( passphrase string, salt []byte ) ([]byte, error) {
	if len(salt) != SaltSize {
		// never happens with salts we generate ourselves
		return nil, fmt.Errorf("%w: bad salt length %d", util.ErrEncryptionError, len(salt))
	}
	key := argon2.IDKey( []byte(passphrase), salt, KdfTime, KdfMemory, KdfLanes, SymKeySize )
	return key, nil
}
