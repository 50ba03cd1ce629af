package compress

import (
	"compress/gzip"
	"io"

	"github.com/provide-io/iconmaker/pkg/operations"
)

func init() {
	operations.Register(NewGzipOperation())
}

// NewGzipOperation creates the GZIP operation at best compression.
func NewGzipOperation() operations.Operation {
	return &codecOperation{
		BaseOperation: operations.BaseOperation{OpID: operations.OP_GZIP, OpName: "GZIP"},
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, gzip.BestCompression)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
	}
}
