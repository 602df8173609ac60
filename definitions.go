package argparser

import (
	"errors"
	"io"
	"log/slog"

	"github.com/napalu/argparser/env"
	"github.com/napalu/argparser/input"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Arity describes how many values an occurrence of an option consumes.
type Arity int

const (
	// Argumentless options take no value, only their presence is counted
	Argumentless Arity = iota
	// Argumented options take exactly one value per occurrence
	Argumented
	// Variadic options take every remaining argument as a value
	Variadic
)

// String returns the string representation of an Arity
func (a Arity) String() string {
	switch a {
	case Argumentless:
		return "argumentless"
	case Argumented:
		return "argumented"
	case Variadic:
		return "variadic"
	default:
		return "unknown"
	}
}

// ColourMode controls whether help output is styled with ANSI escapes
type ColourMode int

const (
	// ColourAuto styles output when it is written to a terminal and NO_COLOR is unset
	ColourAuto ColourMode = iota
	// ColourAlways always styles output
	ColourAlways
	// ColourNever never styles output
	ColourNever
)

// DefaultArgument is the argument label shown in help when an option does not name its value
const DefaultArgument = "ARG"

// unrecognisedReportLimit is the number of unrecognised options reported individually
const unrecognisedReportLimit = 5

// Option describes a command-line option and all the spellings it can be invoked with
type Option struct {
	// Alternatives lists every spelling of the option, e.g. "-h", "--help" or "++hidden"
	Alternatives []string
	// Default is the index into Alternatives of the standard spelling. Negative values count from the end.
	Default int
	// DefaultName, when set, is the standard spelling and must be one of Alternatives
	DefaultName string
	// Arity defines how many values the option consumes
	Arity Arity
	// Argument is the label of the option value shown in help (defaults to ARG)
	Argument string
	// Help is a short, possibly multi-line, description. Options without help are hidden from help output.
	Help string

	standard string
}

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureOptionFunc is used when configuring an Option with NewOption or Option.Set
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureCheckFunc is used to configure the behaviour of a single validation check
type ConfigureCheckFunc func(check *checkConfig)

// AbbreviationFunc returns the only spelling in options which argument abbreviates, or
// false when there is none or when the abbreviation is ambiguous
type AbbreviationFunc func(argument string, options []string) (string, bool)

// ExitFunc terminates the process with the given status
type ExitFunc func(code int)

// Renderer renders the help screen of a Parser
type Renderer interface {
	Render(w io.Writer) error
}

// tableEntry is what a single spelling resolves to
type tableEntry struct {
	standard string
	arity    Arity
	option   *Option
}

// Parser holds the declared options and the result of the most recent Parse
type Parser struct {
	program         string
	description     string
	usage           string
	longDescription string
	options         []*Option
	table           *orderedmap.OrderedMap
	result          *Result
	errors          []error
	out             io.Writer
	lines           LineWriter
	logger          *slog.Logger
	exit            ExitFunc
	colour          ColourMode
	envResolver     env.Resolver
	terminal        input.Terminal
	renderer        Renderer
	abbreviations   AbbreviationFunc
}

type checkConfig struct {
	exit     bool
	exitCode int
}

var (
	ErrNilOption             = errors.New("option is nil")
	ErrNoAlternatives        = errors.New("option has no alternatives")
	ErrInvalidSpelling       = errors.New("option spelling must start with '-' or '+'")
	ErrDefaultOutOfRange     = errors.New("default alternative index out of range")
	ErrDefaultNotAlternative = errors.New("default alternative is not one of the alternatives")
	ErrInvalidArity          = errors.New("invalid arity")
	ErrNilWriter             = errors.New("writer is nil")
	ErrUnrecognisedOption    = errors.New("unrecognised option")
	ErrConflictingOptions    = errors.New("conflicting options")
	ErrOutOfContext          = errors.New("option used out of context")
	ErrFileCount             = errors.New("unexpected number of files")
	ErrNotParsed             = errors.New("arguments have not been parsed")
)

const (
	FmtErrorWithString = "%w: %s"
)
