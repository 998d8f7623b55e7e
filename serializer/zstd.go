package serializer

import (
	"bytes"
	"io"
	"sync"

	"github.com/go-sif/tidy"
	"github.com/klauspost/compress/zstd"
)

// ZstdTableSerializer is a TableSerializer which uses the zstd compression algorithm.
// Its encoder and decoder are reused between calls.
type ZstdTableSerializer struct {
	lock         sync.Mutex
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewZstdTableSerializer instantiates a new ZstdTableSerializer
func NewZstdTableSerializer() (TableSerializer, error) {
	compressor, err := zstd.NewWriter(new(bytes.Buffer), zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	decompressor, err := zstd.NewReader(new(bytes.Buffer))
	if err != nil {
		return nil, err
	}
	return &ZstdTableSerializer{
		compressor:   compressor,
		decompressor: decompressor,
	}, nil
}

// Serialize compresses a Table onto a write stream
func (zts *ZstdTableSerializer) Serialize(w io.Writer, t tidy.Table) error {
	zts.lock.Lock()
	defer zts.lock.Unlock()
	zts.compressor.Reset(w)
	if err := encode(zts.compressor, t); err != nil {
		return err
	}
	return zts.compressor.Close()
}

// Deserialize restores a Table from a read stream
func (zts *ZstdTableSerializer) Deserialize(r io.Reader) (tidy.Table, error) {
	zts.lock.Lock()
	defer zts.lock.Unlock()
	if err := zts.decompressor.Reset(r); err != nil {
		return nil, err
	}
	return decode(zts.decompressor)
}
