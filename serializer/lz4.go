package serializer

import (
	"io"

	"github.com/go-sif/tidy"
	"github.com/pierrec/lz4"
)

// LZ4TableSerializer is a TableSerializer which uses the lz4 compression algorithm
type LZ4TableSerializer struct{}

// NewLZ4TableSerializer instantiates a new LZ4TableSerializer
func NewLZ4TableSerializer() TableSerializer {
	return &LZ4TableSerializer{}
}

// Serialize compresses a Table onto a write stream
func (lz4ts *LZ4TableSerializer) Serialize(w io.Writer, t tidy.Table) error {
	compressor := lz4.NewWriter(w)
	if err := encode(compressor, t); err != nil {
		return err
	}
	return compressor.Close()
}

// Deserialize restores a Table from a read stream
func (lz4ts *LZ4TableSerializer) Deserialize(r io.Reader) (tidy.Table, error) {
	return decode(lz4.NewReader(r))
}
