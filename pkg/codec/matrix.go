package codec

import (
	"bufio"
	"cmp"
	"errors"
	"io"
	"strconv"

	"life-ca/pkg/sims/life"
)

// Standard is the plain 0/1 matrix format (.txt, .cells). The first line
// holds "height width". Obstacle flags are not preserved: 2 and 3 read as
// dead and alive.
var Standard Codec = matrix{name: "standard", exts: []string{".txt", ".cells"}}

// Extended shares the Standard layout with values 0..3 carrying obstacles
// (.gol, .ext).
var Extended Codec = matrix{name: "extended", exts: []string{".gol", ".ext"}, obstacles: true}

func init() {
	Register(Standard)
	Register(Extended)
}

type matrix struct {
	name      string
	exts      []string
	obstacles bool
}

func (m matrix) Name() string         { return m.name }
func (m matrix) Extensions() []string { return m.exts }

func (m matrix) Decode(r io.Reader) (*life.Grid, error) {
	tr := newTokenReader(r)
	h, errH := tr.next()
	w, errW := tr.next()
	if err := cmp.Or(errH, errW); err != nil {
		return nil, classify(err, CodeHeader, "malformed dimension header")
	}
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}

	g := life.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := tr.next()
			if errors.Is(err, io.EOF) {
				return nil, newError(CodeData, nil, "insufficient data: expected %d values, got %d", w*h, y*w+x)
			}
			if err != nil {
				return nil, classify(err, CodeData, "invalid value at row %d column %d", y, x)
			}
			s := life.StateFromInt(v)
			if !m.obstacles {
				s = life.StateFromBool(s.IsAlive(), false)
			}
			_ = g.SetState(x, y, s)
		}
	}
	return g, nil
}

func (m matrix) Encode(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	width := g.Width()

	bw.WriteString(strconv.Itoa(g.Height()))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(width))
	bw.WriteByte('\n')
	for i, code := range cells {
		s := life.State(code)
		v := s.Int()
		if !m.obstacles {
			v = 0
			if s.IsAlive() {
				v = 1
			}
		}
		bw.WriteByte(byte('0' + v))
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	}
	if err := bw.Flush(); err != nil {
		return newError(CodeIO, err, "write")
	}
	return nil
}

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return tokenReader{sc: sc}
}

// next returns the next integer, or io.EOF once the input is exhausted.
func (t tokenReader) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, newError(CodeIO, err, "read")
		}
		return 0, io.EOF
	}
	return strconv.Atoi(t.sc.Text())
}

// classify wraps err under code unless it already is a codec error.
func classify(err error, code Code, format string, args ...any) error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return newError(code, err, format, args...)
}
