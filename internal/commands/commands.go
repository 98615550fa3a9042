package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// UsageError reports a command line that could not be parsed (unknown command, bad flag, -h).
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage reports whether err came from parsing the command line rather than from running a command.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first command line argument (e.g. "cubemap").
// fs is that command's FlagSet and should use flag.ContinueOnError; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Unknown commands and flag errors are returned as *UsageError; errors from Run are returned as is.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return &UsageError{Err: fmt.Errorf("missing subcommand")}
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return &UsageError{Err: fmt.Errorf("unknown command: %s", name)}
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return &UsageError{Err: err}
	}
	if cmd.FlagSet.NArg() > 0 {
		return &UsageError{Err: fmt.Errorf("%s: unexpected arguments %v", name, cmd.FlagSet.Args())}
	}
	return cmd.Run()
}

// Usage writes a one-line summary per command to w.
func (r *Registry) Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [command] [flags]\n\nWith no command, runs uv then cubemap.\n\ncommands:\n", program)
	for _, n := range r.Names() {
		fmt.Fprintf(w, "  %-10s %s\n", n, r.cmds[n].Summary)
	}
}
