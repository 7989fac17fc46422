package cmdl

import (
	"maps"
	"slices"
)

// Flag reports whether any of the given names appeared as a bare flag.
// Names are checked in the listed order, leading dashes are ignored and
// empty names never match.
func (p *Parser) Flag(names ...string) bool {
	for _, name := range names {
		name = trimDashes(name)
		if name == "" {
			continue
		}
		if p.flags[name] > 0 {
			return true
		}
	}
	return false
}

// FlagCount returns how many times name appeared as a bare flag.
func (p *Parser) FlagCount(name string) int {
	return p.flags[trimDashes(name)]
}

// Pos returns the positional argument at index i, or "" when i is out
// of range.
func (p *Parser) Pos(i int) string {
	if i < 0 || i >= len(p.posArgs) {
		return ""
	}
	return p.posArgs[i]
}

// PosVal returns the positional argument at index i as a Value, absent
// when i is out of range.
func (p *Parser) PosVal(i int) Value {
	if i < 0 || i >= len(p.posArgs) {
		return Value{}
	}
	return Value{text: p.posArgs[i], present: true}
}

// Param returns the value of the first listed name that has one,
// absent when none does. Leading dashes are ignored and empty names
// never match.
func (p *Parser) Param(names ...string) Value {
	for _, name := range names {
		name = trimDashes(name)
		if name == "" {
			continue
		}
		if text, ok := p.params[name]; ok {
			return Value{text: text, present: true}
		}
	}
	return Value{}
}

// Len returns the number of positional arguments.
func (p *Parser) Len() int { return len(p.posArgs) }

// PosArgs returns the positional arguments in input order.
func (p *Parser) PosArgs() []string {
	return slices.Clone(p.posArgs)
}

// Flags returns the distinct flag names, sorted.
func (p *Parser) Flags() []string {
	return slices.Sorted(maps.Keys(p.flags))
}

// Params returns the name to value parameter mapping. Duplicate names
// keep the value seen last.
func (p *Parser) Params() map[string]string {
	return maps.Clone(p.params)
}
