package cstore

const (
	arenaChunkSize = 64 * 1024
	arenaMaxAlloc  = arenaChunkSize / 4
)

// arena copies variable-width values into shared chunks. It is dropped
// together with the stripe buffer it belongs to.
type arena struct {
	chunk []byte
	size  int
}

func (a *arena) copy(p []byte) []byte {
	if len(p) == 0 {
		return nil
	}
	a.size += len(p)
	if len(p) > arenaMaxAlloc {
		return append([]byte(nil), p...)
	}
	if cap(a.chunk)-len(a.chunk) < len(p) {
		a.chunk = make([]byte, 0, arenaChunkSize)
	}

	n := len(a.chunk)
	a.chunk = append(a.chunk, p...)
	return a.chunk[n:len(a.chunk):len(a.chunk)]
}
