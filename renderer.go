package argparser

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/argparser/env"
	"github.com/napalu/argparser/input"
	"golang.org/x/text/width"
)

// DefaultRenderer renders the help screen of a Parser:
//
//	program — description
//
//	long description
//
//	USAGE:	first usage line
//	    or	second usage line
//
//	SYNOPSIS:
//	    -h  --help         Print this help
//	    -l  --line LINE    Print LINE
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer returns the DefaultRenderer of parser
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// palette holds the styles of one rendering
type palette struct {
	bold      *color.Color
	dim       *color.Color
	underline *color.Color
	accents   [2]*color.Color // option spelling and first help line, alternating by row
	plains    [2]*color.Color // help continuation lines
}

func newPalette(enabled bool) *palette {
	p := &palette{
		bold:      color.New(color.Bold),
		dim:       color.New(color.Faint),
		underline: color.New(color.Underline),
		accents:   [2]*color.Color{color.New(color.FgCyan, color.Bold), color.New(color.FgBlue, color.Bold)},
		plains:    [2]*color.Color{color.New(color.FgCyan), color.New(color.FgBlue)},
	}
	for _, c := range []*color.Color{p.bold, p.dim, p.underline, p.accents[0], p.accents[1], p.plains[0], p.plains[1]} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// ColourEnabled reports whether help written to w is styled
func (r *DefaultRenderer) ColourEnabled(w io.Writer) bool {
	switch r.parser.colour {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return !env.NoColour(r.parser.envResolver) && input.IsTerminalWriter(w, r.parser.terminal)
	}
}

// Dash returns the separator between program name and description. The Linux VT
// cannot display an em dash.
func (r *DefaultRenderer) Dash() string {
	if env.IsLinuxVT(r.parser.envResolver) {
		return "-"
	}

	return "—"
}

// Render writes the help screen to w
func (r *DefaultRenderer) Render(w io.Writer) error {
	p := r.parser
	pal := newPalette(r.ColourEnabled(w))
	var buf bytes.Buffer

	buf.WriteString(pal.bold.Sprint(p.program) + " " + r.Dash() + " " + p.description + "\n\n")
	if p.longDescription != "" {
		buf.WriteString(p.longDescription + "\n")
	}
	buf.WriteString("\n")

	if p.usage != "" {
		for i, line := range strings.Split(p.usage, "\n") {
			if i == 0 {
				buf.WriteString(pal.bold.Sprint("USAGE:"))
			} else {
				buf.WriteString("    or")
			}
			buf.WriteString("\t" + line + "\n")
		}
		buf.WriteString("\n")
	}

	buf.WriteString(pal.bold.Sprint("SYNOPSIS:") + "\n")
	r.synopsis(&buf, pal)
	buf.WriteString("\n")

	_, err := w.Write(buf.Bytes())

	return err
}

type synopsisRow struct {
	option *Option
	first  string // padded
	last   string
	arg    string
	length int
}

func (r *DefaultRenderer) synopsis(buf *bytes.Buffer, pal *palette) {
	var visible []*Option
	maxFirst := 0
	for _, opt := range r.parser.options {
		if opt.Hidden() {
			continue
		}
		visible = append(visible, opt)
		if len(opt.Alternatives) > 1 {
			maxFirst = max(maxFirst, displayWidth(opt.Alternatives[0]))
		}
	}
	if len(visible) == 0 {
		return
	}

	rows := make([]synopsisRow, 0, len(visible))
	col := 0
	for _, opt := range visible {
		row := synopsisRow{option: opt, last: opt.Alternatives[len(opt.Alternatives)-1]}
		if len(opt.Alternatives) > 1 {
			row.first = opt.Alternatives[0]
		}
		row.first += strings.Repeat(" ", max(0, maxFirst-displayWidth(row.first)))
		row.length = displayWidth(row.first) + 6 + displayWidth(row.last)

		label := opt.ArgumentLabel()
		switch opt.Arity {
		case Argumented:
			row.arg = " " + pal.underline.Sprint(label)
			row.length += displayWidth(label) + 1
		case Variadic:
			row.arg = " [" + pal.underline.Sprint(label) + "...]"
			row.length += displayWidth(label) + 6
		}

		col = max(col, row.length)
		rows = append(rows, row)
	}
	col += 8 - ((col - 4) & 7)

	for i, row := range rows {
		accent, plain := pal.accents[i&1], pal.plains[i&1]
		helpLines := strings.Split(row.option.Help, "\n")

		buf.WriteString("    " + pal.dim.Sprint(row.first) + "  ")
		buf.WriteString(accent.Sprint(row.last+row.arg+strings.Repeat(" ", col-row.length)+helpLines[0]) + "\n")
		for _, line := range helpLines[1:] {
			buf.WriteString(strings.Repeat(" ", col) + plain.Sprint(line) + "\n")
		}
	}
}

// displayWidth returns the number of terminal cells s occupies
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}
