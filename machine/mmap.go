package machine

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/hexdraft/zdoc/errs"
)

// MmapReader is a Reader backed by a memory-mapped file rather than an
// owned, heap-allocated byte slice (§6.5): field access behaves
// byte-identically to a copy-based Reader (§8 property 11), with the
// kernel supplying pages on demand instead of a bulk read.
type MmapReader struct {
	*Reader
	region mmap.MMap
	file   *os.File
}

// OpenMmap memory-maps path read-only, applies a sequential-access
// prefetch hint where the host supports it, and validates the header
// before returning.
func OpenMmap(path string) (*MmapReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errs.IoError{Cause: err}
	}

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()

		return nil, &errs.IoError{Cause: err}
	}

	adviseSequential(region)

	r := NewReader(region)
	if err := r.Validate(); err != nil {
		region.Unmap()
		f.Close()

		return nil, err
	}

	return &MmapReader{Reader: r, region: region, file: f}, nil
}

// Close unmaps the region and closes the backing file.
func (m *MmapReader) Close() error {
	if err := m.region.Unmap(); err != nil {
		m.file.Close()

		return &errs.IoError{Cause: err}
	}

	if err := m.file.Close(); err != nil {
		return &errs.IoError{Cause: err}
	}

	return nil
}
