package inspect

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/soapywu/pbxproj/internal/cmd/base"
	"github.com/soapywu/pbxproj/internal/projectfile"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the objects a project would be patched at"
}

func (c *Command) Help() string {
	return `Usage: pbxspm inspect [path]

  Parse an Xcode project and print, as JSON, the root object, project,
  main target and frameworks build phase ids, and the remote Swift package
  references it already has.

  path is resolved the same way as for "pbxspm add".` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("inspect", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() > 1 {
		ui.Error("expected at most one project path")
		return 1
	}

	project := flags.Arg(0)
	if project == "" {
		project = os.Getenv("PBXSPM_PROJECT")
	}
	path, err := projectfile.Resolve(c.Fs, project)
	if err != nil {
		ui.Error(fmt.Sprintf("error locating project: %v", err))
		return 1
	}
	doc, err := projectfile.Load(c.Fs, path)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		ui.Error(fmt.Sprintf("error encoding document: %v", err))
		return 1
	}
	ui.Output(string(out))
	return 0
}
