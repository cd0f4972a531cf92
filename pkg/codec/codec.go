// Released under an MIT license. See LICENSE.

// Package codec reads and writes Brack statements in a binary format.
//
// Each statement is one record: an encoded expression. A value is a tag
// byte followed by its payload.
//
//	0x01 number      8 bytes, IEEE 754, big-endian
//	0x02 text        uvarint length, UTF-8 bytes
//	0x03 expression  uvarint count, encoded elements
package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/num"
	"github.com/bracklang/brack/pkg/type/prog"
	"github.com/bracklang/brack/pkg/type/str"
)

// Value tags.
const (
	TagNumber     byte = 0x01
	TagText       byte = 0x02
	TagExpression byte = 0x03
)

// Limits on decoded sizes.
const (
	MaxDepth    = 1 << 10
	MaxElements = 1 << 20
	MaxText     = 1 << 26
)

// Encoder writes statements as records to an output stream.
type Encoder struct {
	buf bytes.Buffer
	w   io.Writer
}

// NewEncoder creates an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the record for s.
func (e *Encoder) Encode(s *expr.T) error {
	e.buf.Reset()

	if err := encode(&e.buf, s, 0); err != nil {
		return err
	}

	_, err := e.w.Write(e.buf.Bytes())

	return err
}

// Decoder reads records from an input stream.
type Decoder struct {
	err error
	r   *bufio.Reader
}

// NewDecoder creates a decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// HasNext returns true if there is another record to read.
func (d *Decoder) HasNext() bool {
	if d.err != nil {
		return true
	}

	_, err := d.r.Peek(1)
	if err == nil {
		return true
	}

	if !errors.Is(err, io.EOF) {
		d.err = err

		return true
	}

	return false
}

// Next returns the statement in the next record.
// It fails with fault.ErrNoStatement at the end of the stream.
func (d *Decoder) Next() (*expr.T, error) {
	if d.err != nil {
		return nil, d.err
	}

	if !d.HasNext() {
		return nil, fault.NoStatement()
	}

	if d.err != nil {
		return nil, d.err
	}

	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, d.fail(err)
	}

	if tag != TagExpression {
		return nil, d.fail(fault.Malformed("record", fmt.Sprintf("expected expression, got tag 0x%02x", tag)))
	}

	e, err := decodeExpression(d.r, 0)
	if err != nil {
		return nil, d.fail(err)
	}

	return e, nil
}

func (d *Decoder) fail(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = fault.Malformed("record", "unexpected end of input")
	}

	d.err = err

	return err
}

// Marshal returns the records for every statement of p.
func Marshal(p *prog.T) ([]byte, error) {
	var b bytes.Buffer

	for _, s := range p.Statements() {
		if err := encode(&b, s, 0); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

// Unmarshal reads every record in b.
func Unmarshal(b []byte) (*prog.T, error) {
	d := NewDecoder(bytes.NewReader(b))
	p := prog.New()

	for d.HasNext() {
		s, err := d.Next()
		if err != nil {
			return nil, err
		}

		p.Append(s)
	}

	return p, nil
}

func decode(r *bufio.Reader, depth int) (cell.I, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case TagNumber:
		var b [8]byte

		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, err
		}

		return num.New(math.Float64frombits(binary.BigEndian.Uint64(b[:]))), nil

	case TagText:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}

		if n > MaxText {
			return nil, fault.Malformed("record", fmt.Sprintf("text of %d bytes is too long", n))
		}

		b := make([]byte, n)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, err
		}

		return str.New(string(b)), nil

	case TagExpression:
		return decodeExpression(r, depth+1)
	}

	return nil, fault.Malformed("record", fmt.Sprintf("unknown tag 0x%02x", tag))
}

func decodeExpression(r *bufio.Reader, depth int) (*expr.T, error) {
	if depth > MaxDepth {
		return nil, fault.Malformed("record", "expressions nested too deeply")
	}

	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}

	if n > MaxElements {
		return nil, fault.Malformed("record", fmt.Sprintf("expression of %d elements is too long", n))
	}

	elements := make([]cell.I, 0, min(n, 64))

	for i := uint64(0); i < n; i++ {
		c, err := decode(r, depth)
		if err != nil {
			return nil, err
		}

		elements = append(elements, c)
	}

	return expr.New(elements...), nil
}

func encode(b *bytes.Buffer, c cell.I, depth int) error {
	var scratch [binary.MaxVarintLen64]byte

	switch {
	case num.Is(c):
		n, _ := num.To(c)

		b.WriteByte(TagNumber)

		var f [8]byte

		binary.BigEndian.PutUint64(f[:], math.Float64bits(n.Float()))
		b.Write(f[:])

	case str.Is(c):
		s := cell.String(c)

		b.WriteByte(TagText)
		b.Write(scratch[:binary.PutUvarint(scratch[:], uint64(len(s)))])
		b.WriteString(s)

	case expr.Is(c):
		e, _ := expr.To(c)

		if depth > MaxDepth {
			return fault.Malformed("record", "expressions nested too deeply")
		}

		b.WriteByte(TagExpression)
		b.Write(scratch[:binary.PutUvarint(scratch[:], uint64(e.Len()))])

		for _, v := range e.Elements() {
			if err := encode(b, v, depth+1); err != nil {
				return err
			}
		}

	default:
		return fault.Type("encode", 1, "number, text or expression", cell.Name(c))
	}

	return nil
}
