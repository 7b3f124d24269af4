// Package cli implements a small programmatic command-line option parser:
// options are registered on a set at run time and an argv slice is parsed
// into a CommandLine with typed accessors. It exists for tools that build
// their option set dynamically, where flag-style static registration does
// not fit.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Option describes one recognized command-line option.
type Option struct {
	// Short is the single-letter form (-x), 0 for none.
	Short byte
	// Long is the --long form and the key for lookups. Required.
	Long string
	// HasArg marks the option as taking a value.
	HasArg bool
	// Required makes Parse fail when the option is absent.
	Required bool
	// Help is the usage line for the option.
	Help string
}

// OptionSet is a registry of recognized options.
type OptionSet struct {
	opts    []*Option
	byShort map[byte]*Option
	byLong  map[string]*Option
}

// NewOptionSet creates an empty option registry.
func NewOptionSet() *OptionSet {
	return &OptionSet{
		byShort: make(map[byte]*Option),
		byLong:  make(map[string]*Option),
	}
}

// Add registers o, rejecting duplicate short or long names.
func (s *OptionSet) Add(o Option) error {
	if o.Long == "" {
		return fmt.Errorf("cli: option must have a long name")
	}
	if _, dup := s.byLong[o.Long]; dup {
		return fmt.Errorf("cli: duplicate option --%s", o.Long)
	}
	if o.Short != 0 {
		if _, dup := s.byShort[o.Short]; dup {
			return fmt.Errorf("cli: duplicate option -%c", o.Short)
		}
	}
	opt := &o
	s.opts = append(s.opts, opt)
	s.byLong[o.Long] = opt
	if o.Short != 0 {
		s.byShort[o.Short] = opt
	}
	return nil
}

// Options returns the registered options in registration order.
func (s *OptionSet) Options() []Option {
	out := make([]Option, len(s.opts))
	for i, o := range s.opts {
		out[i] = *o
	}
	return out
}

// Parse walks args and returns the recognized options and remaining
// positional arguments. A bare "--" terminates option parsing; everything
// after it is positional.
func (s *OptionSet) Parse(args []string) (*CommandLine, error) {
	cl := &CommandLine{
		values: make(map[string]string),
		seen:   make(map[string]bool),
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			cl.args = append(cl.args, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "--"):
			name, inline, hasInline := strings.Cut(arg[2:], "=")
			opt, ok := s.byLong[name]
			if !ok {
				return nil, fmt.Errorf("cli: unknown option --%s", name)
			}
			switch {
			case !opt.HasArg:
				if hasInline {
					return nil, fmt.Errorf("cli: option --%s takes no value", name)
				}
				cl.seen[opt.Long] = true
			case hasInline:
				cl.seen[opt.Long] = true
				cl.values[opt.Long] = inline
			default:
				if i+1 >= len(args) {
					return nil, fmt.Errorf("cli: option --%s requires a value", name)
				}
				i++
				cl.seen[opt.Long] = true
				cl.values[opt.Long] = args[i]
			}
		case len(arg) > 1 && arg[0] == '-':
			// Grouped short options: only the final one may take a value.
			for j := 1; j < len(arg); j++ {
				opt, ok := s.byShort[arg[j]]
				if !ok {
					return nil, fmt.Errorf("cli: unknown option -%c", arg[j])
				}
				if !opt.HasArg {
					cl.seen[opt.Long] = true
					continue
				}
				if j != len(arg)-1 {
					return nil, fmt.Errorf("cli: option -%c requires a value and cannot be grouped", arg[j])
				}
				if i+1 >= len(args) {
					return nil, fmt.Errorf("cli: option -%c requires a value", arg[j])
				}
				i++
				cl.seen[opt.Long] = true
				cl.values[opt.Long] = args[i]
			}
		default:
			cl.args = append(cl.args, arg)
		}
	}
	for _, opt := range s.opts {
		if opt.Required && !cl.seen[opt.Long] {
			return nil, fmt.Errorf("cli: required option --%s is missing", opt.Long)
		}
	}
	return cl, nil
}

// CommandLine is the result of a successful Parse.
type CommandLine struct {
	values map[string]string
	seen   map[string]bool
	args   []string
}

// Has reports whether the option was present.
func (c *CommandLine) Has(long string) bool { return c.seen[long] }

// Value returns the option's raw value and whether one was given.
func (c *CommandLine) Value(long string) (string, bool) {
	v, ok := c.values[long]
	return v, ok
}

// String returns the option's value, or def when absent.
func (c *CommandLine) String(long, def string) string {
	if v, ok := c.values[long]; ok {
		return v
	}
	return def
}

// Int returns the option's value parsed as an integer, or def when absent.
func (c *CommandLine) Int(long string, def int) (int, error) {
	v, ok := c.values[long]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("cli: option --%s: %w", long, err)
	}
	return n, nil
}

// Time returns the option's value parsed with layout, or def when absent.
func (c *CommandLine) Time(long, layout string, def time.Time) (time.Time, error) {
	v, ok := c.values[long]
	if !ok {
		return def, nil
	}
	ts, err := time.Parse(layout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("cli: option --%s: %w", long, err)
	}
	return ts, nil
}

// Args returns the positional arguments in order of appearance.
func (c *CommandLine) Args() []string { return c.args }
