// cmdldump classifies its own command line and prints the three
// resulting buckets. It exists to poke at the classifier:
//
//	cmdldump --prefer-param --params=in,out --in a.txt -xvf --multiflag 42
//
// The mode toggles below steer the classification and are stripped
// from the dumped argv. Everything else is passed through untouched.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/TheGrizzlyDev/cmdl"
)

func main() {
	// A bootstrap parse picks up the toggles; the real parse then runs
	// with the requested mode over the remaining tokens.
	boot := cmdl.New(cmdl.WithParams("params"))
	boot.Parse(os.Args[1:])

	var mode cmdl.Mode
	if boot.Flag("prefer-param") {
		mode |= cmdl.PreferParamForUnregOption
	}
	if boot.Flag("multiflag") {
		mode |= cmdl.SingleDashIsMultiflag
	}
	if boot.Flag("no-eq-split") {
		mode |= cmdl.NoSplitOnEqualsign
	}
	if boot.Flag("v", "verbose") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	p := cmdl.New()
	if reg := boot.Param("params"); reg.Present() {
		p.AddParams(strings.Split(reg.Str(), ",")...)
	}

	args := stripToggles(os.Args[1:])
	slog.Debug("classifying", "args", args, "mode", mode)

	p.Parse(args, mode)
	fmt.Print(render(p))
}

var toggles = map[string]bool{
	"prefer-param": true,
	"multiflag":    true,
	"no-eq-split":  true,
	"v":            true,
	"verbose":      true,
}

// stripToggles removes cmdldump's own switches from args so they do not
// show up in the dump. "--params" in its two-token form consumes its
// value as well.
func stripToggles(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			name, _, hasEq := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
			if toggles[name] && !hasEq {
				continue
			}
			if name == "params" {
				if !hasEq {
					i++
				}
				continue
			}
		}
		out = append(out, args[i])
	}
	return out
}

func render(p *cmdl.Parser) string {
	var b strings.Builder
	head := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(&b, "%s\n", head("Positional args:"))
	for i, arg := range p.PosArgs() {
		fmt.Fprintf(&b, "\t%d: %s\n", i, arg)
	}

	fmt.Fprintf(&b, "%s\n", head("Flags:"))
	for _, name := range p.Flags() {
		if n := p.FlagCount(name); n > 1 {
			fmt.Fprintf(&b, "\t%s (x%d)\n", name, n)
		} else {
			fmt.Fprintf(&b, "\t%s\n", name)
		}
	}

	fmt.Fprintf(&b, "%s\n", head("Parameters:"))
	params := p.Params()
	for _, name := range slices.Sorted(maps.Keys(params)) {
		fmt.Fprintf(&b, "\t%s = %s\n", name, params[name])
	}
	return b.String()
}
