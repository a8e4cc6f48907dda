package flags

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FlagSetWithVisit is a flag.FlagSet that accepts short aliases and
// remembers which flags were given explicitly.
type FlagSetWithVisit struct {
	fs       *flag.FlagSet
	out      io.Writer
	visited  map[string]bool
	aliases  map[string]string // short name → long name
	usageMap map[string]string // long name → usage string
}

func NewFlagSetWithVisit(name string, out io.Writer) *FlagSetWithVisit {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	fsv := &FlagSetWithVisit{
		fs:       fs,
		out:      out,
		visited:  make(map[string]bool),
		aliases:  make(map[string]string),
		usageMap: make(map[string]string),
	}
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n", name)
		fsv.printUsage()
	}
	return fsv
}

func (fsv *FlagSetWithVisit) register(name, short, usage string) {
	if short != "" {
		fsv.aliases[short] = name
	}
	fsv.usageMap[name] = usage
}

// BoolVar registers a bool flag with optional short alias.
func (fsv *FlagSetWithVisit) BoolVar(p *bool, name, short string, value bool, usage string) {
	fsv.fs.BoolVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// StringVar registers a string flag with optional short alias.
func (fsv *FlagSetWithVisit) StringVar(p *string, name, short, value, usage string) {
	fsv.fs.StringVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// IntVar registers an int flag with optional short alias.
func (fsv *FlagSetWithVisit) IntVar(p *int, name, short string, value int, usage string) {
	fsv.fs.IntVar(p, name, value, usage)
	fsv.register(name, short, usage)
}

// Int64Var registers an int64 flag with optional short alias.
func (fsv *FlagSetWithVisit) Int64Var(p *int64, name, short string, value int64, usage string) {
	fsv.fs.Int64Var(p, name, value, usage)
	fsv.register(name, short, usage)
}

// Parse expands short aliases and parses args.
func (fsv *FlagSetWithVisit) Parse(args []string) error {
	if err := fsv.fs.Parse(fsv.expandAliases(args)); err != nil {
		return err
	}
	if rest := fsv.fs.Args(); len(rest) > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
		fmt.Fprintln(fsv.out, err)
		fsv.fs.Usage()
		return err
	}
	fsv.fs.Visit(func(f *flag.Flag) {
		fsv.visited[f.Name] = true
	})
	return nil
}

// expandAliases replaces short flags (e.g. -r) with full names (e.g. -reset).
func (fsv *FlagSetWithVisit) expandAliases(args []string) []string {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
			expanded = append(expanded, arg)
			continue
		}
		name, value := arg[1:], ""
		if i := strings.IndexByte(arg, '='); i != -1 {
			name, value = arg[1:i], arg[i:]
		}
		if full, ok := fsv.aliases[name]; ok {
			arg = "-" + full + value
		}
		expanded = append(expanded, arg)
	}
	return expanded
}

// IsCustom reports whether the flag was given on the command line.
func (fsv *FlagSetWithVisit) IsCustom(name string) bool {
	return fsv.visited[name]
}

func (fsv *FlagSetWithVisit) Usage() {
	fsv.fs.Usage()
}

// printUsage prints formatted usage with short aliases.
func (fsv *FlagSetWithVisit) printUsage() {
	shorts := make(map[string]string, len(fsv.aliases))
	for s, full := range fsv.aliases {
		shorts[full] = s
	}
	var names []string
	var nameLen int
	for name := range fsv.usageMap {
		names = append(names, name)
		nameLen = max(nameLen, len(name))
	}
	sort.Strings(names)
	for _, name := range names {
		usage := fsv.usageMap[name]
		if short, ok := shorts[name]; ok {
			fmt.Fprintf(fsv.out, "  -%s, -%-*s\t%s\n", short, nameLen, name, usage)
		} else {
			fmt.Fprintf(fsv.out, "      -%-*s\t%s\n", nameLen, name, usage)
		}
	}
}
