package webmio

func pack(n int, b []byte) uint64 {
	var v uint64

	for i := 0; i < n; i++ {
		v = v<<8 | uint64(b[i])
	}

	return v
}
