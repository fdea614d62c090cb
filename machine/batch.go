package machine

import (
	"errors"
	"iter"
)

// ErrSectionNotBatchEligible is returned by Records when the requested
// section contains at least one array-valued cell: such a row does not
// occupy a fixed byte width in the buffer's fixed section, so it cannot
// be walked as a sequence of fixed-size records (§4.4 batch iteration).
// Callers should decode the Document and walk sec.Rows instead.
var ErrSectionNotBatchEligible = errors.New("machine: section is not eligible for fixed-size batch iteration")

// ErrSectionNotFound is returned by Records when no section with the
// given ID exists in the buffer.
var ErrSectionNotFound = errors.New("machine: section not found")

// Records returns an iterator over sectionID's rows as borrowed,
// fixed-size byte views directly into the underlying buffer — no
// decoding, no copy — mirroring blob.NumericBlob's iter.Seq2 record walk
// (blob/numeric_blob.go, All/AllByName). Each yielded slice must not
// outlive r's backing buffer. The returned int is the record count.
func (r *Reader) Records(sectionID string) (iter.Seq2[int, []byte], int, error) {
	_, index, err := r.decode()
	if err != nil {
		return nil, 0, err
	}

	var info *sectionBatchInfo
	for i := range index {
		if index[i].id == sectionID {
			info = &index[i]

			break
		}
	}
	if info == nil {
		return nil, 0, ErrSectionNotFound
	}
	if !info.eligible {
		return nil, 0, ErrSectionNotBatchEligible
	}

	data := r.data
	seq := func(yield func(int, []byte) bool) {
		for i := 0; i < info.count; i++ {
			start := info.rowsStart + i*info.recordLen
			record := data[start : start+info.recordLen]
			if !yield(i, record) {
				return
			}
		}
	}

	return seq, info.count, nil
}
