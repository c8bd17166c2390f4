package bfvm

import (
	"bufio"
	"io"
	"strings"
)

// ByteSource supplies one byte per ',' instruction. Implementations may
// block. io.EOF means no more input.
type ByteSource interface {
	NextByte() (byte, error)
}

// ByteSink receives one byte per '.' instruction, in execution order.
type ByteSink interface {
	EmitByte(b byte) error
}

type BytesSource struct {
	data []byte
}

var _ ByteSource = new(BytesSource)

func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{
		data: data,
	}
}

func (s *BytesSource) NextByte() (byte, error) {
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

// Remaining returns the bytes not consumed yet.
func (s *BytesSource) Remaining() []byte {
	return s.data
}

type readerSource struct {
	r io.ByteReader
}

func ReaderSource(r io.Reader) ByteSource {
	if br, ok := r.(io.ByteReader); ok {
		return readerSource{r: br}
	}
	return readerSource{r: bufio.NewReader(r)}
}

func (s readerSource) NextByte() (byte, error) {
	return s.r.ReadByte()
}

type promptSource struct {
	prompt string
	out    io.Writer
	in     *bufio.Reader
}

// PromptSource writes prompt to out before every read and takes the first
// byte of the next line from in. An empty line yields '\n'.
func PromptSource(prompt string, out io.Writer, in io.Reader) ByteSource {
	return &promptSource{
		prompt: prompt,
		out:    out,
		in:     bufio.NewReader(in),
	}
}

func (s *promptSource) NextByte() (byte, error) {
	if _, err := io.WriteString(s.out, s.prompt); err != nil {
		return 0, err
	}
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return '\n', nil
	}
	return line[0], nil
}

type writerSink struct {
	w io.Writer
}

func WriterSink(w io.Writer) ByteSink {
	return writerSink{w: w}
}

func (s writerSink) EmitByte(b byte) error {
	if bw, ok := s.w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	_, err := s.w.Write([]byte{b})
	return err
}
