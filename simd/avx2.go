package simd

import "encoding/binary"

// avx2Sum processes four lanes per iteration, standing in for a real
// AVX2 256-bit accumulate (4 x u64 per register). The accumulation order
// differs from scalarSum's strictly sequential walk, but uint64 addition
// is associative under wraparound, so the result is identical for any
// input — the equivalence §8 property 10 requires.
func avx2Sum(data []byte) uint64 {
	lanes := len(data) / 8
	var acc [4]uint64
	i := 0
	for ; i+4 <= lanes; i += 4 {
		acc[0] += binary.LittleEndian.Uint64(data[(i+0)*8:])
		acc[1] += binary.LittleEndian.Uint64(data[(i+1)*8:])
		acc[2] += binary.LittleEndian.Uint64(data[(i+2)*8:])
		acc[3] += binary.LittleEndian.Uint64(data[(i+3)*8:])
	}

	sum := acc[0] + acc[1] + acc[2] + acc[3]
	for ; i < lanes; i++ {
		sum += binary.LittleEndian.Uint64(data[i*8:])
	}

	return sum
}

func avx2Search(data []byte, needle uint64) int {
	lanes := len(data) / 8
	i := 0
	for ; i+4 <= lanes; i += 4 {
		for j := 0; j < 4; j++ {
			if binary.LittleEndian.Uint64(data[(i+j)*8:]) == needle {
				return i + j
			}
		}
	}
	for ; i < lanes; i++ {
		if binary.LittleEndian.Uint64(data[i*8:]) == needle {
			return i
		}
	}

	return -1
}

func avx2Compare(lhs, rhs []byte) bool {
	lanes := len(lhs) / 8
	i := 0
	for ; i+4 <= lanes; i += 4 {
		for j := 0; j < 4; j++ {
			a := binary.LittleEndian.Uint64(lhs[(i+j)*8:])
			b := binary.LittleEndian.Uint64(rhs[(i+j)*8:])
			if a != b {
				return false
			}
		}
	}
	for ; i < lanes; i++ {
		a := binary.LittleEndian.Uint64(lhs[i*8:])
		b := binary.LittleEndian.Uint64(rhs[i*8:])
		if a != b {
			return false
		}
	}

	return true
}
