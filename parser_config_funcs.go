package argparser

import (
	"io"
	"log/slog"
	"os"

	"github.com/napalu/argparser/env"
	"github.com/napalu/argparser/input"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithDescription("print a line"),
//		WithUsage("-l LINE\n--lines LINE..."),
//		WithStderr(true),
//		WithOption(NewOption(
//			WithAlternatives("-h", "-?", "--help"),
//			WithHelp("Print this help"))),
//		WithOption(NewOption(
//			WithAlternatives("-l", "--line"),
//			WithArity(Argumented),
//			WithArgument("LINE"),
//			WithHelp("Print LINE"))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithOption is a wrapper for Add
func WithOption(option *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.Add(option)
	}
}

// WithDescription sets the short, single-line, description printed next to the program name in help
func WithDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.description = description
	}
}

// WithUsage sets the usage text. Each line is one way of invoking the program.
func WithUsage(usage string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.usage = usage
	}
}

// WithLongDescription sets the long, multi-line, description of the program
func WithLongDescription(longDescription string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.longDescription = longDescription
	}
}

// WithProgram overrides the program name used in help and diagnostics
func WithProgram(program string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.program = program
	}
}

// WithStderr makes the parser write help and diagnostics to stderr instead of stdout
func WithStderr(useStderr bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if useStderr {
			*err = parser.SetOutput(os.Stderr)
		} else {
			*err = parser.SetOutput(os.Stdout)
		}
	}
}

// WithOutput makes the parser write help and diagnostics to w
func WithOutput(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetOutput(w)
	}
}

// WithLineWriter sends diagnostics to lines. Help is still written to the output of the parser.
func WithLineWriter(lines LineWriter) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetLineWriter(lines)
	}
}

// WithLogger sets the logger which receives a debug record for every classified argument
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}

// WithExitFunc replaces os.Exit in checks configured with ExitWith
func WithExitFunc(exit ExitFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetExitFunc(exit)
	}
}

// WithColour selects whether help is styled
func WithColour(mode ColourMode) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetColour(mode)
	}
}

// WithEnvResolver sets the resolver used to look up TERM and NO_COLOR
func WithEnvResolver(resolver env.Resolver) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetEnvResolver(resolver)
	}
}

// WithTerminal sets the terminal detection used by ColourAuto
func WithTerminal(terminal input.Terminal) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetTerminal(terminal)
	}
}

// WithRenderer replaces the DefaultRenderer
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetRenderer(renderer)
	}
}

// WithAbbreviations enables expansion of abbreviated long options. StandardAbbreviations accepts
// any unambiguous prefix.
func WithAbbreviations(abbreviations AbbreviationFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetAbbreviations(abbreviations)
	}
}

// SetProgram sets the program name used in help and diagnostics
func (p *Parser) SetProgram(program string) {
	p.program = program
}

// GetProgram returns the program name used in help and diagnostics
func (p *Parser) GetProgram() string {
	return p.program
}

// SetOutput sets the writer help and diagnostics are written to
func (p *Parser) SetOutput(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	p.out = w
	p.lines = NewLineWriter(w)

	return nil
}

// SetLineWriter sets the destination of diagnostics
func (p *Parser) SetLineWriter(lines LineWriter) error {
	if lines == nil {
		return ErrNilWriter
	}
	p.lines = lines

	return nil
}

// SetLogger sets the debug logger, nil discards
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = logger
}

// SetExitFunc sets the function called by failing checks configured with ExitWith, nil restores os.Exit
func (p *Parser) SetExitFunc(exit ExitFunc) {
	if exit == nil {
		exit = os.Exit
	}
	p.exit = exit
}

// SetColour selects whether help is styled
func (p *Parser) SetColour(mode ColourMode) {
	p.colour = mode
}

// SetEnvResolver sets the environment resolver, nil restores the process environment
func (p *Parser) SetEnvResolver(resolver env.Resolver) {
	if resolver == nil {
		resolver = &env.DefaultEnvResolver{}
	}
	p.envResolver = resolver
}

// SetTerminal sets the terminal detection, nil restores the default
func (p *Parser) SetTerminal(terminal input.Terminal) {
	if terminal == nil {
		terminal = &input.DefaultTerminal{}
	}
	p.terminal = terminal
}

// SetRenderer sets the help renderer, nil restores the DefaultRenderer
func (p *Parser) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = NewRenderer(p)
	}
	p.renderer = renderer
}

// SetAbbreviations sets the abbreviation expansion of long options, nil disables it
func (p *Parser) SetAbbreviations(abbreviations AbbreviationFunc) {
	p.abbreviations = abbreviations
}
