// Package cmdl classifies a raw argument vector into positional
// arguments, boolean flags and name/value parameters without requiring
// a grammar up front. Any input is accepted: the parser performs no
// validation, prints nothing and never exits the process. What a token
// means is decided by a single left-to-right pass with one token of
// lookahead, steered by a combinable Mode bit-mask.
//
// Dash-prefixed tokens that read as numbers ("-1", "-0.4", "-1e6") are
// always positional values, never options.
package cmdl

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Parser classifies an argument vector and answers queries about the
// result. A Parser is constructed empty (optionally pre-seeded with
// registered parameter names), consumes argv via Parse, and is
// read-only afterwards; concurrent reads are safe, concurrent Parse
// calls are not.
type Parser struct {
	mode       Mode
	posArgs    []string
	flags      map[string]int
	params     map[string]string
	registered map[string]struct{}
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithParams pre-registers names as always taking the next token as
// their value.
func WithParams(names ...string) Option {
	return func(p *Parser) { p.AddParams(names...) }
}

// WithMode sets the mode used by Parse calls that pass none.
func WithMode(mode Mode) Option {
	return func(p *Parser) { p.mode = mode }
}

// New returns an empty Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		flags:      map[string]int{},
		params:     map[string]string{},
		registered: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse constructs a Parser and classifies argv in one call.
func Parse(argv []string, mode ...Mode) *Parser {
	p := New()
	p.Parse(argv, mode...)
	return p
}

// AddParam registers name as always taking the next token as its
// value. Leading dashes are stripped. Registration must happen before
// Parse; it is never consulted retroactively.
func (p *Parser) AddParam(name string) {
	p.registered[trimDashes(name)] = struct{}{}
}

// AddParams registers every name, see AddParam.
func (p *Parser) AddParams(names ...string) {
	for _, name := range names {
		p.AddParam(name)
	}
}

// Parse classifies argv in a single pass. Previous parse results are
// discarded; registered parameter names persist. Every token sequence
// is acceptable, so Parse cannot fail.
//
// Passing one or more modes overrides the mode set at construction;
// multiple modes are OR-ed together.
func (p *Parser) Parse(argv []string, mode ...Mode) {
	p.posArgs = nil
	p.flags = map[string]int{}
	p.params = map[string]string{}

	m := p.mode
	if len(mode) > 0 {
		m = combine(mode)
	}

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if !isOption(arg) {
			p.posArgs = append(p.posArgs, arg)
			continue
		}

		name := trimDashes(arg)

		if m&NoSplitOnEqualsign == 0 {
			if eq := strings.IndexByte(name, '='); eq != -1 {
				p.params[name[:eq]] = name[eq+1:]
				continue
			}
		}

		// -xvf style multi-flags. Splitting is terminal for the token,
		// except when its last rune alone is a registered parameter
		// name: then the leading runes become flags and the last rune
		// falls through to normal classification.
		if m&SingleDashIsMultiflag != 0 && len(arg)-len(name) == 1 {
			if !p.isRegistered(name) {
				runes := []rune(name)
				keep := ""
				if len(runes) > 0 {
					if last := string(runes[len(runes)-1]); p.isRegistered(last) {
						keep = last
						runes = runes[:len(runes)-1]
					}
				}
				for _, r := range runes {
					p.flags[string(r)]++
				}
				if keep == "" {
					continue
				}
				name = keep
			}
		}

		// Last token, or the next token is an option too: nothing left
		// to act as a value.
		if i == len(argv)-1 || isOption(argv[i+1]) {
			p.flags[name]++
			continue
		}

		if p.isRegistered(name) || m&PreferParamForUnregOption != 0 {
			p.params[name] = argv[i+1]
			i++ // the value is not a positional argument
			continue
		}

		p.flags[name]++
	}
}

// ParseLine splits line into tokens using shell quoting rules and
// parses the result.
func (p *Parser) ParseLine(line string, mode ...Mode) error {
	argv, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("ParseLine: %w", err)
	}
	p.Parse(argv, mode...)
	return nil
}

func (p *Parser) isRegistered(name string) bool {
	_, ok := p.registered[name]
	return ok
}

// isOption reports whether arg gets option treatment. Number-shaped
// tokens are carved out so negative numeric arguments do not collide
// with the dash prefix convention.
func isOption(arg string) bool {
	if isNumber(arg) {
		return false
	}
	return strings.HasPrefix(arg, "-")
}

// trimDashes strips any number of leading dashes, so "-x", "--x" and
// "---x" all refer to the logical name "x".
func trimDashes(name string) string {
	return strings.TrimLeft(name, "-")
}
