package audio
import (
	"fmt"
	"io"
)

// wav.NewEncoder wants an io.WriteSeeker so it can go back and patch
// chunk sizes, but the whole pipeline stays in memory here.
type writeSeeker struct {
	buf	[]byte
	pos	int
}

func(ws *writeSeeker) Write( p []byte ) (int, error) {
	if need := ws.pos + len(p); need > len(ws.buf) {
		if need > cap(ws.buf) {
			grown := make( []byte, need, need * 2 )
			copy( grown, ws.buf )
			ws.buf = grown
		} else {
			ws.buf = ws.buf[:need]
		}
	}
	copy( ws.buf[ws.pos:], p )
	ws.pos += len(p)
	return len(p), nil
}

func(ws *writeSeeker) Seek( offset int64, whence int ) (int64, error) {
	pos := int64(ws.pos)
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos += offset
	case io.SeekEnd:
		pos = int64(len(ws.buf)) + offset
	default:
		return 0, fmt.Errorf("audio: invalid seek whence %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("audio: seek before start")
	}
	ws.pos = int(pos)
	return pos, nil
}
