package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"life-ca/pkg/sims/life"
)

// rleLineWidth is the column at which encoded output wraps.
const rleLineWidth = 70

// RLE is the run-length encoded pattern format (.rle). Decoded cells are
// always plain living cells; obstacles are not represented.
var RLE Codec = rle{}

func init() {
	Register(RLE)
}

type rle struct{}

func (rle) Name() string         { return "rle" }
func (rle) Extensions() []string { return []string{".rle"} }

func (rle) Decode(r io.Reader) (*life.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var (
		w, h   int
		header bool
		data   strings.Builder
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if !header && (line[0] == 'x' || line[0] == 'X') {
			var err error
			if w, h, err = parseRLEHeader(line); err != nil {
				return nil, err
			}
			header = true
			continue
		}
		data.WriteString(line)
		if strings.IndexByte(line, '!') >= 0 {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, newError(CodeIO, err, "read")
	}
	if !header {
		return nil, newError(CodeHeader, nil, `missing "x = W, y = H" header`)
	}
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}

	g := life.New(w, h)
	decodeRuns(data.String(), g)
	return g, nil
}

// parseRLEHeader reads the x and y keys of a header line. Keys and values
// may be separated by any mix of spaces, commas and equals signs; other keys
// such as rule are ignored.
func parseRLEHeader(line string) (w, h int, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '=' || unicode.IsSpace(r)
	})
	var seenX, seenY bool
	for i := 0; i+1 < len(fields); i++ {
		var dst *int
		switch strings.ToLower(fields[i]) {
		case "x":
			dst, seenX = &w, true
		case "y":
			dst, seenY = &h, true
		default:
			continue
		}
		v, perr := strconv.Atoi(fields[i+1])
		if perr != nil {
			return 0, 0, newError(CodeHeader, perr, "malformed header %q", line)
		}
		*dst = v
		i++
	}
	if !seenX || !seenY {
		return 0, 0, newError(CodeHeader, nil, "malformed header %q", line)
	}
	return w, h, nil
}

// decodeRuns marks the living runs of an RLE body. Cells falling outside
// the declared size are dropped.
func decodeRuns(body string, g *life.Grid) {
	x, y, count := 0, 0, 0
	w := g.Width()
	for _, ch := range body {
		switch {
		case ch >= '0' && ch <= '9':
			count = count*10 + int(ch-'0')
			if count > MaxCells {
				count = MaxCells
			}
			continue
		case unicode.IsSpace(ch):
			continue
		}
		n := max(count, 1)
		count = 0
		switch ch {
		case 'b', '.':
			x += n
		case 'o', 'O':
			for i := 0; i < n && x+i < w; i++ {
				_ = g.SetAlive(x+i, y, true)
			}
			x += n
		case '$':
			y += n
			x = 0
		case '!':
			return
		}
	}
}

func (rle) Encode(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "#C Generated by life-ca")
	fmt.Fprintf(bw, "x = %d, y = %d, rule = %s\n", g.Width(), g.Height(), g.Rule().Notation())

	out := &runWriter{w: bw}
	cells := g.Cells()
	width, height := g.Width(), g.Height()
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		last := -1
		for x := width - 1; x >= 0; x-- {
			if life.State(row[x]).IsAlive() {
				last = x
				break
			}
		}
		for x := 0; x <= last; {
			alive := life.State(row[x]).IsAlive()
			run := 1
			for x+run <= last && life.State(row[x+run]).IsAlive() == alive {
				run++
			}
			tag := byte('b')
			if alive {
				tag = 'o'
			}
			out.run(run, tag)
			x += run
		}
		if y < height-1 {
			out.token("$")
		}
	}
	out.token("!")
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return newError(CodeIO, err, "write")
	}
	return nil
}

// runWriter emits tokens, breaking lines between tokens only.
type runWriter struct {
	w   *bufio.Writer
	col int
}

func (rw *runWriter) run(n int, tag byte) {
	if n > 1 {
		rw.token(strconv.Itoa(n) + string(tag))
		return
	}
	rw.token(string(tag))
}

func (rw *runWriter) token(tok string) {
	if rw.col > 0 && rw.col+len(tok) > rleLineWidth {
		rw.w.WriteByte('\n')
		rw.col = 0
	}
	rw.w.WriteString(tok)
	rw.col += len(tok)
}
