package simd

import "encoding/binary"

// avx512Sum processes eight lanes per iteration, standing in for a real
// AVX-512 512-bit accumulate (8 x u64 per register). See avx2Sum for why
// the reordered accumulation is still bit-identical to scalarSum.
func avx512Sum(data []byte) uint64 {
	lanes := len(data) / 8
	var acc [8]uint64
	i := 0
	for ; i+8 <= lanes; i += 8 {
		for j := 0; j < 8; j++ {
			acc[j] += binary.LittleEndian.Uint64(data[(i+j)*8:])
		}
	}

	var sum uint64
	for _, a := range acc {
		sum += a
	}
	for ; i < lanes; i++ {
		sum += binary.LittleEndian.Uint64(data[i*8:])
	}

	return sum
}

func avx512Search(data []byte, needle uint64) int {
	lanes := len(data) / 8
	i := 0
	for ; i+8 <= lanes; i += 8 {
		for j := 0; j < 8; j++ {
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

func avx512Compare(lhs, rhs []byte) bool {
	lanes := len(lhs) / 8
	i := 0
	for ; i+8 <= lanes; i += 8 {
		for j := 0; j < 8; j++ {
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
