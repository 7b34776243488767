package solana

import "fmt"

// Short-vec ("compact-u16") length prefix: little-endian base-128 varint,
// at most three bytes. Every repeated field in the legacy wire format is
// prefixed with one.

func appendShortVecLen(out []byte, n int) []byte {
	v := uint16(n)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func readShortVecLen(in []byte) (int, int, error) {
	var value, shift uint
	for i := 0; i < 3; i++ {
		if i >= len(in) {
			return 0, 0, fmt.Errorf("solana: short-vec length truncated")
		}
		b := in[i]
		value |= uint(b&0x7f) << shift
		if b&0x80 == 0 {
			if value > 0xffff {
				return 0, 0, fmt.Errorf("solana: short-vec length out of range")
			}
			return int(value), i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("solana: short-vec length too long")
}
