package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps a flag.FlagSet to render its flags for command help.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help returns the "Options:" block listing every flag, or "" when the set is
// empty.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		if name != "" {
			fmt.Fprintf(&buf, "\n  -%s=<%s>\n", fl.Name, name)
		} else {
			fmt.Fprintf(&buf, "\n  -%s\n", fl.Name)
		}
		if fl.DefValue != "" && fl.DefValue != "false" {
			usage += fmt.Sprintf(" Defaults to %q.", fl.DefValue)
		}
		fmt.Fprintf(&buf, "    %s\n", strings.ReplaceAll(usage, "\n", "\n    "))
	})
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n" + strings.TrimRight(buf.String(), "\n")
}

// StringSliceValue is a repeatable string flag.
type StringSliceValue []string

func (s *StringSliceValue) String() string {
	return strings.Join(*s, ", ")
}

func (s *StringSliceValue) Set(v string) error {
	*s = append(*s, v)
	return nil
}
