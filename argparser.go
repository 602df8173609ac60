// Copyright 2021-2026, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argparser provides support for command-line processing.
//
// Options are declared with one of 3 arities:
//
//	Argumentless - an option which takes no value ("-v", "--verbose")
//	Argumented - an option which takes exactly one value ("-l LINE", "-lLINE", "--line=LINE" or "--line LINE")
//	Variadic - an option which takes every remaining argument as a value ("--lines a b c")
//
// Every option has one or more spellings prefixed by '-' or '+'. Short spellings may be clustered
// ("-abc" is "-a -b -c"), "--" makes every following argument a file and "++" makes only the next
// argument a file. Arguments which are neither options nor option values are files.
package argparser

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/argparser/env"
	"github.com/napalu/argparser/input"
	"github.com/napalu/argparser/parse"
	"github.com/napalu/argparser/procname"
	orderedmap "github.com/wk8/go-ordered-map"
)

// NewParser convenience initialization method. Use NewParserWith to
// configure a Parser using option functions.
func NewParser() *Parser {
	p := &Parser{
		program:     defaultProgram(),
		table:       orderedmap.New(),
		errors:      []error{},
		out:         os.Stdout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		exit:        os.Exit,
		envResolver: &env.DefaultEnvResolver{},
		terminal:    &input.DefaultTerminal{},
	}
	p.lines = NewLineWriter(p.out)
	p.renderer = NewRenderer(p)

	return p
}

func defaultProgram() string {
	if name, ok := procname.Name(0, false); ok && name != "" {
		return name
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}

	return "?"
}

// Add registers an option. Every alternative spelling is entered in the option table, a
// spelling which is already known is silently redefined.
func (p *Parser) Add(option *Option) error {
	if option == nil {
		return ErrNilOption
	}

	standard, err := option.resolveStandard()
	if err != nil {
		return err
	}
	option.standard = standard

	entry := &tableEntry{standard: standard, arity: option.Arity, option: option}
	for _, alt := range option.Alternatives {
		p.table.Set(alt, entry)
	}
	p.options = append(p.options, option)

	return nil
}

// AddArgumentless registers an option which takes no value. The first alternative is the standard spelling.
func (p *Parser) AddArgumentless(help string, alternatives ...string) error {
	option := NewArgumentless(alternatives...)
	option.Help = help

	return p.Add(option)
}

// AddArgumented registers an option which takes exactly one value per occurrence
func (p *Parser) AddArgumented(argument, help string, alternatives ...string) error {
	option := NewArgumented(argument, alternatives...)
	option.Help = help

	return p.Add(option)
}

// AddVariadic registers an option which takes every remaining argument as a value
func (p *Parser) AddVariadic(argument, help string, alternatives ...string) error {
	option := NewVariadic(argument, alternatives...)
	option.Help = help

	return p.Add(option)
}

// Options returns the registered options in registration order
func (p *Parser) Options() []*Option {
	return p.options
}

// Lookup returns the option a spelling resolves to
func (p *Parser) Lookup(spelling string) (*Option, bool) {
	entry, found := p.lookup(spelling)
	if !found {
		return nil, false
	}

	return entry.option, true
}

// Spellings returns every known spelling in the order it was first registered
func (p *Parser) Spellings() []string {
	spellings := make([]string, 0, p.table.Len())
	for pair := p.table.Oldest(); pair != nil; pair = pair.Next() {
		spellings = append(spellings, pair.Key.(string))
	}

	return spellings
}

func (p *Parser) lookup(spelling string) (*tableEntry, bool) {
	v, found := p.table.Get(spelling)
	if !found {
		return nil, false
	}

	return v.(*tableEntry), true
}

// Scan classifies args (which must not include the program path) and returns the result without
// modifying the Parser. Unrecognised options are reported on the parser's LineWriter as they are found.
// A fully configured Parser may be used by several goroutines calling Scan concurrently.
func (p *Parser) Scan(args []string) *Result {
	return newScanState(p, args).run()
}

// Parse this function should be called on os.Args[1:] (or a user-defined array of arguments). The result
// becomes the current result of the Parser. Returns true when every option-shaped argument was recognised.
func (p *Parser) Parse(args []string) bool {
	p.errors = []error{}
	p.result = p.Scan(args)
	for _, tok := range p.result.Unrecognised() {
		p.addError(fmt.Errorf(FmtErrorWithString, ErrUnrecognisedOption, tok))
	}

	return p.result.Clean()
}

// ParseString splits argString using shell quoting rules and calls Parse
func (p *Parser) ParseString(argString string) bool {
	args, err := parse.Split(argString)
	if err != nil {
		p.errors = []error{err}
		p.result = nil
		return false
	}

	return p.Parse(args)
}

// Result returns the result of the most recent Parse or nil when nothing was parsed
func (p *Parser) Result() *Result {
	return p.result
}

// Used returns true when the option occurred in the most recent Parse
func (p *Parser) Used(name string) bool {
	if p.result == nil {
		return false
	}

	return p.result.Used(name)
}

// Get returns the last value of an option in the most recent Parse
func (p *Parser) Get(name string) (string, bool) {
	if p.result == nil {
		return "", false
	}

	return p.result.Get(name)
}

// Files returns the files of the most recent Parse
func (p *Parser) Files() []string {
	if p.result == nil {
		return nil
	}

	return p.result.Files()
}

// Message returns the files of the most recent Parse joined by blank spaces
func (p *Parser) Message() (string, bool) {
	if p.result == nil {
		return "", false
	}

	return p.result.Message()
}

// UnrecognisedCount returns the number of unrecognised options in the most recent Parse
func (p *Parser) UnrecognisedCount() int {
	if p.result == nil {
		return 0
	}

	return p.result.UnrecognisedCount()
}

// SupportAlternatives makes every spelling an alias of its standard spelling in the current result
func (p *Parser) SupportAlternatives() {
	if p.result != nil {
		p.result.SupportAlternatives()
	}
}

// GetErrors returns a list of the errors encountered during Parse and the Test functions
func (p *Parser) GetErrors() []error {
	return p.errors
}

// GetErrorCount is greater than zero when errors were encountered during Parse or the Test functions
func (p *Parser) GetErrorCount() int {
	return len(p.errors)
}

// Help writes the help screen to the output of the Parser
func (p *Parser) Help() error {
	return p.WriteHelp(p.out)
}

// WriteHelp writes the help screen to w using the Renderer of the Parser
func (p *Parser) WriteHelp(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}

	return p.renderer.Render(w)
}

// StandardAbbreviations is an AbbreviationFunc which expands argument to the only spelling it is a prefix of
func StandardAbbreviations(argument string, options []string) (string, bool) {
	var match string
	count := 0
	for _, opt := range options {
		if opt == argument {
			return opt, true
		}
		if strings.HasPrefix(opt, argument) {
			match = opt
			count++
		}
	}

	return match, count == 1
}

func (p *Parser) addError(err error) {
	p.errors = append(p.errors, err)
}

// warn writes a diagnostic line
func (p *Parser) warn(line string) {
	if err := p.lines.WriteLine(line); err != nil {
		p.logger.Debug("could not write diagnostic", "line", line, "error", err)
	}
}
