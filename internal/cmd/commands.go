package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/soapywu/pbxproj/internal/cmd/base"
	"github.com/soapywu/pbxproj/internal/cmd/commands/add"
	"github.com/soapywu/pbxproj/internal/cmd/commands/inspect"
	"github.com/soapywu/pbxproj/internal/cmd/commands/version"
)

// Commands is the mapping of all available pbxspm commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"add": func() (cli.Command, error) {
			return &add.Command{Command: b}, nil
		},
		"inspect": func() (cli.Command, error) {
			return &inspect.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
