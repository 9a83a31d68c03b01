package version

import (
	"github.com/soapywu/pbxproj/internal/cmd/base"
	"github.com/soapywu/pbxproj/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: pbxspm version

  Print the version of pbxspm.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("pbxspm v" + version.Version)
	return 0
}
