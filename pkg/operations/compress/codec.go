// Package compress registers the compression operations used for archive
// exports.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/provide-io/iconmaker/pkg/operations"
)

// codecOperation adapts a streaming compressor/decompressor pair to the
// operations.Operation interface.
type codecOperation struct {
	operations.BaseOperation
	newWriter func(w io.Writer) (io.WriteCloser, error)
	newReader func(r io.Reader) (io.ReadCloser, error)
}

// Apply compresses data
func (o *codecOperation) Apply(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := o.ApplyStream(bytes.NewReader(input), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ApplyStream compresses a stream
func (o *codecOperation) ApplyStream(input io.Reader, output io.Writer) error {
	w, err := o.newWriter(output)
	if err != nil {
		return fmt.Errorf("creating %s writer: %w", o.OpName, err)
	}

	if _, err := io.Copy(w, input); err != nil {
		w.Close()
		return fmt.Errorf("compressing %s stream: %w", o.OpName, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s writer: %w", o.OpName, err)
	}
	return nil
}

// Reverse decompresses data
func (o *codecOperation) Reverse(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := o.ReverseStream(bytes.NewReader(input), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReverseStream decompresses a stream
func (o *codecOperation) ReverseStream(input io.Reader, output io.Writer) error {
	r, err := o.newReader(input)
	if err != nil {
		return fmt.Errorf("creating %s reader: %w", o.OpName, err)
	}
	defer r.Close()

	if _, err := io.Copy(output, r); err != nil {
		return fmt.Errorf("decompressing %s stream: %w", o.OpName, err)
	}
	return nil
}
