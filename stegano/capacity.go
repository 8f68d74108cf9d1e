package stegano
import (
	"covert/cryptography"
	"covert/stegano/audio"
	"covert/stegano/img"
)

// message capacity is what remains of the carrier's raw byte capacity
// after the envelope overhead (magic + salt + nonce + tag, 48 bytes).
// clamped, tiny carriers simply hold nothing.
func messageCapacity( rawBytes int ) int {
	c := rawBytes - cryptography.EnvelopeOverhead
	if c < 0 {
		return 0
	}
	return c
}

// maximum message size in bytes the image can hold
func ImageCapacity( decoy []byte ) (int, error) {
	raw, err := img.Capacity( decoy )
	if err != nil {
		return 0, err
	}
	return messageCapacity( raw ), nil
}

// maximum message size in bytes the waveform can hold
func AudioCapacity( decoy []byte ) (int, error) {
	raw, err := audio.Capacity( decoy )
	if err != nil {
		return 0, err
	}
	return messageCapacity( raw ), nil
}
