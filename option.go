package argparser

import (
	"fmt"
	"strings"
)

// NewArgumentless convenience initialization method for options which take no value.
// The first alternative is the standard spelling.
func NewArgumentless(alternatives ...string) *Option {
	return &Option{
		Alternatives: alternatives,
		Arity:        Argumentless,
	}
}

// NewArgumented convenience initialization method for options which take exactly one value
// per occurrence. argument is the value label used in help output.
func NewArgumented(argument string, alternatives ...string) *Option {
	return &Option{
		Alternatives: alternatives,
		Arity:        Argumented,
		Argument:     argument,
	}
}

// NewVariadic convenience initialization method for options which consume all following arguments
func NewVariadic(argument string, alternatives ...string) *Option {
	return &Option{
		Alternatives: alternatives,
		Arity:        Variadic,
		Argument:     argument,
	}
}

// NewOption initialization method to configure an Option using option functions.
// Configurations which fail are skipped, use Set to observe the error.
func NewOption(configs ...ConfigureOptionFunc) *Option {
	option := &Option{}
	var err error
	for _, config := range configs {
		config(option, &err)
	}

	return option
}

// Set configures the Option with the provided ConfigureOptionFunc(s) and returns the
// first error a configuration results in.
//
// Usage example:
//
//	opt := &Option{}
//	err := opt.Set(
//	    WithAlternatives("-l", "--line"),
//	    WithArity(Argumented),
//	    WithArgument("LINE"),
//	)
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Standard returns the standard spelling which results are stored under. It is only
// known once the option has been added to a Parser.
func (o *Option) Standard() string {
	return o.standard
}

// ArgumentLabel returns the label of the option value, DefaultArgument when none was given
func (o *Option) ArgumentLabel() string {
	if o.Argument == "" {
		return DefaultArgument
	}

	return o.Argument
}

// Hidden is true for options which have no help text
func (o *Option) Hidden() bool {
	return o.Help == ""
}

// String returns a string representation of the Option
func (o *Option) String() string {
	return fmt.Sprintf("%s (%s)", strings.Join(o.Alternatives, ", "), o.Arity)
}

// resolveStandard validates the option and determines its standard spelling
func (o *Option) resolveStandard() (string, error) {
	if len(o.Alternatives) == 0 {
		return "", ErrNoAlternatives
	}
	for _, alt := range o.Alternatives {
		if len(alt) < 2 || (alt[0] != '-' && alt[0] != '+') {
			return "", fmt.Errorf(FmtErrorWithString, ErrInvalidSpelling, alt)
		}
	}
	if o.Arity < Argumentless || o.Arity > Variadic {
		return "", fmt.Errorf("%w: %d", ErrInvalidArity, int(o.Arity))
	}

	if o.DefaultName != "" {
		for _, alt := range o.Alternatives {
			if alt == o.DefaultName {
				return alt, nil
			}
		}
		return "", fmt.Errorf(FmtErrorWithString, ErrDefaultNotAlternative, o.DefaultName)
	}

	idx := o.Default
	if idx < 0 {
		idx += len(o.Alternatives)
	}
	if idx < 0 || idx >= len(o.Alternatives) {
		return "", fmt.Errorf("%w: %d (%d alternatives)", ErrDefaultOutOfRange, o.Default, len(o.Alternatives))
	}

	return o.Alternatives[idx], nil
}
