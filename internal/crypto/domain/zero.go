package domain

// Zero overwrites b with zeros so key material does not linger in memory.
// Safe to call on a nil slice.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
