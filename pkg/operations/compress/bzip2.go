package compress

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/provide-io/iconmaker/pkg/operations"
)

func init() {
	operations.Register(NewBzip2Operation())
}

// NewBzip2Operation creates the BZIP2 operation at level 9.
func NewBzip2Operation() operations.Operation {
	return &codecOperation{
		BaseOperation: operations.BaseOperation{OpID: operations.OP_BZIP2, OpName: "BZIP2"},
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: 9})
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return bzip2.NewReader(r, &bzip2.ReaderConfig{})
		},
	}
}
