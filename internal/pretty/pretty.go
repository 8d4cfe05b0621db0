package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mgutz/ansi"

	"alnedit-core/edits"
	"alnedit-core/records"
	"alnedit/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Columns per block line. If <=0, use default (60).
	Width int

	// Glyphs for the track between the rows.
	ExactGlyph    string // identical symbols, default "|"
	MismatchGlyph string // two different symbols, default "."
	GapGlyph      string // one side is a gap, default " "

	// Colour differing columns in both rows.
	Color      bool
	ColorStyle string // mgutz/ansi style, default "red+b"
}

// DefaultOptions is the plain, uncoloured look.
var DefaultOptions = Options{
	Width:         60,
	ExactGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
	ColorStyle:    "red+b",
}

const linePrefix = "# "

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.ExactGlyph == "" {
		o.ExactGlyph = DefaultOptions.ExactGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	if o.ColorStyle == "" {
		o.ColorStyle = DefaultOptions.ColorStyle
	}
	return o
}

// RenderResult renders the default block for r.
func RenderResult(r engine.Result) string { return RenderResultWithOptions(r, DefaultOptions) }

// RenderResultWithOptions prints a summary line followed by the alignment
// in blocks of opt.Width columns:
//
//	# r1 columns=13 distance=4 identity=69.23% cigar=1M1D6M1I4M
//	# A  1 ACCACAGT-CATA 12
//	#      | ||.||| ||.|
//	# B  3 A-CAGAGTACAAA 14
//
// Coordinates are 1-based and count symbols only. Row B of local and
// distance jobs is numbered in reference coordinates.
func RenderResultWithOptions(r engine.Result, opt Options) string {
	var b strings.Builder
	if !r.OK() {
		fmt.Fprintf(&b, "%s(alignment not available: %v)\n\n", linePrefix, r.Err)
		return b.String()
	}
	if !r.HasRows {
		fmt.Fprintf(&b, "%s(alignment not available: rows not built)\n\n", linePrefix)
		return b.String()
	}
	opt = opt.withDefaults()

	aln := edits.Alignment{RowA: r.RowA, RowB: r.RowB}
	cigar, err := edits.Compress(r.Edits)
	if err != nil {
		cigar = "?"
	}
	id := r.Job.ID
	if id == "" {
		id = "-"
	}
	fmt.Fprintf(&b, "%s%s columns=%d distance=%d identity=%.2f%% cigar=%s\n",
		linePrefix, id, r.Columns, r.Distance, 100*edits.Identity(aln), cigar)

	offB := 0
	if r.Job.Mode == records.ModeLocal || r.Job.Mode == records.ModeDistance {
		offB = r.Job.Anchor
	}
	maxCoord := len(r.SeqA)
	if n := offB + len(r.SeqB); n > maxCoord {
		maxCoord = n
	}
	numW := len(strconv.Itoa(maxCoord))

	colour := func(s string) string { return s }
	if opt.Color {
		colour = ansi.ColorFunc(opt.ColorStyle)
	}

	n := aln.Len()
	posA, posB := 0, offB
	for s := 0; s < n; s += opt.Width {
		e := s + opt.Width
		if e > n {
			e = n
		}
		ca, cb := aln.RowA[s:e], aln.RowB[s:e]
		na, nb := symbols(ca), symbols(cb)
		fmt.Fprintf(&b, "%sA %*d %s %s\n", linePrefix, numW, posA+1, paint(ca, cb, colour, opt.Color), blockEnd(posA, na))
		fmt.Fprintf(&b, "%s  %*s %s\n", linePrefix, numW, "", track(ca, cb, opt))
		fmt.Fprintf(&b, "%sB %*d %s %s\n", linePrefix, numW, posB+1, paint(cb, ca, colour, opt.Color), blockEnd(posB, nb))
		posA += na
		posB += nb
		if e < n {
			b.WriteString(linePrefix + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// blockEnd is the last coordinate a block covers, or "-" when the block
// holds only gaps on that row.
func blockEnd(pos, n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(pos + n)
}

// symbols counts the non-gap bytes of s.
func symbols(s string) int {
	return len(s) - strings.Count(s, string(edits.Gap))
}

func track(a, b string, opt Options) string {
	var sb strings.Builder
	sb.Grow(len(a))
	for i := 0; i < len(a); i++ {
		switch {
		case a[i] == edits.Gap || b[i] == edits.Gap:
			sb.WriteString(opt.GapGlyph)
		case a[i] == b[i]:
			sb.WriteString(opt.ExactGlyph)
		default:
			sb.WriteString(opt.MismatchGlyph)
		}
	}
	return sb.String()
}

// paint colours the bytes of row that differ from other.
func paint(row, other string, colour func(string) string, on bool) string {
	if !on {
		return row
	}
	var sb strings.Builder
	for i := 0; i < len(row); i++ {
		if row[i] != other[i] {
			sb.WriteString(colour(row[i : i+1]))
		} else {
			sb.WriteByte(row[i])
		}
	}
	return sb.String()
}
