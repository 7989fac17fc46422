package cmdl

// Mode is a combinable bit-mask steering ambiguous-case resolution
// during classification. The zero Mode gives the defaults: an
// unregistered option followed by a value token becomes a flag, and
// "name=value" tokens are split.
type Mode int

const (
	// PreferFlagForUnregOption records an unregistered option followed
	// by a value token as a flag; the value stays positional. This is
	// the default behavior.
	PreferFlagForUnregOption Mode = 1 << iota

	// PreferParamForUnregOption records an unregistered option followed
	// by a value token as a parameter consuming that token. Wins over
	// PreferFlagForUnregOption when both are set.
	PreferParamForUnregOption

	// NoSplitOnEqualsign disables splitting "name=value" tokens; the
	// whole dash-stripped token becomes the flag name.
	NoSplitOnEqualsign

	// SingleDashIsMultiflag splits a single-dash token like "-xvf" into
	// the individual flags x, v and f.
	SingleDashIsMultiflag
)

func combine(modes []Mode) Mode {
	var m Mode
	for _, mode := range modes {
		m |= mode
	}
	return m
}
