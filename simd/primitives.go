package simd

import "github.com/hexdraft/zdoc/errs"

// SumU64s sums data interpreted as packed little-endian u64 lanes, via
// whichever path the dispatcher selected for this host.
func SumU64s(data []byte) (uint64, error) {
	if len(data)%8 != 0 {
		return 0, errs.ErrBufferNotU64Aligned
	}

	return current().sum(data), nil
}

// Search returns the lane index of needle's first occurrence in data, or
// -1 if it is not present.
func Search(data []byte, needle uint64) (int, error) {
	if len(data)%8 != 0 {
		return 0, errs.ErrBufferNotU64Aligned
	}

	return current().search(data, needle), nil
}

// Compare reports whether lhs and rhs, both interpreted as packed
// little-endian u64 lanes, are equal lane-for-lane.
func Compare(lhs, rhs []byte) (bool, error) {
	if len(lhs)%8 != 0 || len(rhs)%8 != 0 {
		return false, errs.ErrBufferNotU64Aligned
	}
	if len(lhs) != len(rhs) {
		return false, errs.ErrCompareLengthMismatch
	}

	return current().compare(lhs, rhs), nil
}
