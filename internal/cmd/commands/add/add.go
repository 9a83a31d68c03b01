package add

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soapywu/pbxproj/internal/cmd/base"
	"github.com/soapywu/pbxproj/internal/config"
	"github.com/soapywu/pbxproj/internal/projectfile"
	"github.com/soapywu/pbxproj/pbxproj"
)

type Command struct {
	*base.Command

	flagConfig   string
	flagPackages base.StringSliceValue
	flagDryRun   bool
}

func (c *Command) Synopsis() string {
	return "Add Swift package references to an Xcode project"
}

func (c *Command) Help() string {
	return `Usage: pbxspm add [options] [path]

  Add remote Swift packages to the first native target of an Xcode project
  and link their products in its frameworks build phase.

  path is a .xcodeproj bundle or a project.pbxproj file. When omitted, the
  project comes from the config file, then PBXSPM_PROJECT, then the single
  .xcodeproj found in the working directory or in ios/.

  Projects that already reference remote Swift packages are left unchanged.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", os.Getenv("PBXSPM_CONFIG"),
		"Path to an HCL or YAML `file` listing the packages to add.",
	)
	f.Var(
		&c.flagPackages, "package",
		"Package to add as url@version=Product1,Product2. May be repeated.",
	)
	f.BoolVar(
		&c.flagDryRun, "dry-run", false,
		"Print the modified project instead of writing it.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

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
	var packages []pbxproj.ExternalPackage
	if c.flagConfig != "" {
		cfg, err := config.Load(c.Fs, c.flagConfig)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		if err := cfg.Validate(); err != nil {
			ui.Error(fmt.Sprintf("invalid config file %s: %v", c.flagConfig, err))
			return 1
		}
		if project == "" {
			project = cfg.Project
		}
		packages = append(packages, cfg.ExternalPackages()...)
	}
	for _, spec := range c.flagPackages {
		pkg, err := ParsePackage(spec)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		packages = append(packages, pkg)
	}
	if len(packages) == 0 {
		ui.Error("no packages given, use -config or -package")
		return 1
	}
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

	modifier := pbxproj.NewModifier(pbxproj.WithLogger(logger.Named("modifier")))
	out, err := modifier.AddPackages(doc, packages)
	if err != nil {
		var anchorErr *pbxproj.AnchorError
		if errors.As(err, &anchorErr) {
			logger.Debug("anchor lookup failed",
				"step", anchorErr.Step, "anchor", anchorErr.Anchor, "found", anchorErr.Found)
		}
		ui.Error(fmt.Sprintf("error modifying %s: %v", path, err))
		return 1
	}

	if out == doc.Content() {
		ui.Info(fmt.Sprintf("%s already references Swift packages, nothing to do", path))
		return 0
	}

	if c.flagDryRun {
		ui.Output(out)
		return 0
	}

	if err := projectfile.Save(c.Fs, path, out); err != nil {
		ui.Error(err.Error())
		return 1
	}
	logger.Info("project updated", "path", path, "packages", len(packages))
	ui.Info(fmt.Sprintf("Added %d package(s) to %s", len(packages), path))
	return 0
}

// ParsePackage parses url@version=Product1,Product2. The last "=" and the last
// "@" before it split the parts, so scp-like URLs such as
// git@github.com:org/repo.git keep their user.
func ParsePackage(spec string) (pbxproj.ExternalPackage, error) {
	eq := strings.LastIndex(spec, "=")
	if eq < 0 {
		return pbxproj.ExternalPackage{}, fmt.Errorf("invalid package %q: missing =products", spec)
	}
	at := strings.LastIndex(spec[:eq], "@")
	if at <= 0 {
		return pbxproj.ExternalPackage{}, fmt.Errorf("invalid package %q: missing @version", spec)
	}

	var products []string
	for _, p := range strings.Split(spec[eq+1:], ",") {
		if p = strings.TrimSpace(p); p != "" {
			products = append(products, p)
		}
	}

	pkg := pbxproj.ExternalPackage{
		RepositoryURL: spec[:at],
		Version:       spec[at+1 : eq],
		Products:      products,
	}
	if err := pkg.Validate(); err != nil {
		return pbxproj.ExternalPackage{}, fmt.Errorf("invalid package %q: %w", spec, err)
	}
	return pkg, nil
}
