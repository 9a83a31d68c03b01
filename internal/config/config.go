// Package config loads the list of Swift packages to add to a project from an
// HCL or YAML file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/soapywu/pbxproj/pbxproj"
)

// Config is the packages file.
type Config struct {
	// Project is the path of the .xcodeproj directory or its project.pbxproj,
	// relative to the working directory.
	Project string `hcl:"project,optional" yaml:"project"`

	Packages []*Package `hcl:"package,block" yaml:"packages"`
}

// Package is one remote Swift package and the products linked from it.
type Package struct {
	URL      string   `hcl:"url,label" yaml:"url"`
	Version  string   `hcl:"version" yaml:"version"`
	Products []string `hcl:"products" yaml:"products"`
}

// Load reads and decodes the config file at path. The format is picked from
// the file extension: .hcl, .yaml or .yml.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		if err := hclsimple.Decode(filepath.Base(path), src, nil, &cfg); err != nil {
			return nil, fmt.Errorf("error decoding HCL config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, &cfg); err != nil {
			return nil, fmt.Errorf("error decoding YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	return &cfg, nil
}

// Validate checks every package and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	seen := make(map[string]bool, len(c.Packages))
	for i, p := range c.ExternalPackages() {
		if err := p.Validate(); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("package %d (%s): %w", i, p.RepositoryURL, err))
		}
		if p.RepositoryURL != "" && seen[p.RepositoryURL] {
			result = multierror.Append(result,
				fmt.Errorf("package %d (%s): repository listed more than once", i, p.RepositoryURL))
		}
		seen[p.RepositoryURL] = true
	}

	return result.ErrorOrNil()
}

// ExternalPackages converts the configured packages, preserving order.
func (c *Config) ExternalPackages() []pbxproj.ExternalPackage {
	pkgs := make([]pbxproj.ExternalPackage, 0, len(c.Packages))
	for _, p := range c.Packages {
		if p == nil {
			continue
		}
		pkgs = append(pkgs, pbxproj.ExternalPackage{
			RepositoryURL: p.URL,
			Version:       p.Version,
			Products:      append([]string(nil), p.Products...),
		})
	}
	return pkgs
}
