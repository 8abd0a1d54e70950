package dawg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// FormatError reports that data read from a Dawg file is structurally
// invalid -- truncated, or declaring a cell count inconsistent with the
// file's actual size -- as distinct from an I/O failure reading it.
type FormatError struct {
	cause error
}

func newFormatError(cause error) *FormatError {
	return &FormatError{cause: cause}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dawg: invalid file format: %v", e.cause)
}

func (e *FormatError) Unwrap() error { return e.cause }

// fileFormat: a 4-byte big-endian cell count, followed by that many
// 4-byte big-endian packed cells.
const cellByteWidth = 4

// Store writes d's packed cells to w.
func (d *Dawg) Store(w io.Writer) error {
	n := d.cells.len()
	var header [cellByteWidth]byte
	binary.BigEndian.PutUint32(header[:], uint32(n))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	var buf [cellByteWidth]byte
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[:], uint32(d.cells.at(int32(i))))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// StoreFile writes d to filename, creating or truncating it.
func (d *Dawg) StoreFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Store(f)
}

// Load reads a Dawg previously written by Store, materializing every
// cell into memory. A truncated or malformed stream is reported as a
// *FormatError; any other read failure is returned unwrapped.
func Load(r io.Reader) (*Dawg, error) {
	var header [cellByteWidth]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, wrapReadErr(err)
	}
	n := binary.BigEndian.Uint32(header[:])

	cells := make(sliceCells, n)
	var buf [cellByteWidth]byte
	for i := range cells {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, wrapReadErr(err)
		}
		cells[i] = cell(binary.BigEndian.Uint32(buf[:]))
	}

	return &Dawg{cells: cells}, nil
}

func wrapReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newFormatError(err)
	}
	return err
}

// cellReaderAt is a cellSource backed by a memory-mapped file: cells are
// read lazily, 4 bytes at a time, straight out of the mapping rather
// than copied into a slice up front.
type cellReaderAt struct {
	r *mmap.ReaderAt
	n int
}

func (c cellReaderAt) len() int { return c.n }

func (c cellReaderAt) at(i int32) cell {
	var buf [cellByteWidth]byte
	off := cellByteWidth + int64(i)*cellByteWidth
	if _, err := c.r.ReadAt(buf[:], off); err != nil {
		panic(fmt.Errorf("dawg: reading cell %d: %w", i, err))
	}
	return cell(binary.BigEndian.Uint32(buf[:]))
}

// LoadFile opens filename as a memory-mapped Dawg: cells are read
// straight out of the mapping on demand, so opening even a very large
// dictionary is effectively free, at the cost of a page fault per cell
// the first time it is touched. Call Close when done.
func LoadFile(filename string) (*Dawg, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}

	size := r.Len()
	if size < cellByteWidth {
		r.Close()
		return nil, newFormatError(fmt.Errorf("file too short (%d bytes)", size))
	}

	var header [cellByteWidth]byte
	if _, err := r.ReadAt(header[:], 0); err != nil {
		r.Close()
		return nil, err
	}
	n := binary.BigEndian.Uint32(header[:])

	wantSize := cellByteWidth + int(n)*cellByteWidth
	if size != wantSize {
		r.Close()
		return nil, newFormatError(fmt.Errorf(
			"declared cell count %d implies file size %d, got %d", n, wantSize, size))
	}

	return &Dawg{
		cells:  cellReaderAt{r: r, n: int(n)},
		closer: r,
	}, nil
}
