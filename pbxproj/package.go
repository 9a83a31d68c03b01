/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package pbxproj

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const repositoryExtension = ".git"

var nonBlankRegex = regexp.MustCompile(`^\S+$`)

// ExternalPackage is one Swift package dependency to declare in a project.
type ExternalPackage struct {
	RepositoryURL string   `json:"repositoryUrl"`
	Version       string   `json:"version"`
	Products      []string `json:"products"`
}

// DisplayName is the last path segment of the repository URL without its
// ".git" suffix, the name Xcode shows for the package.
func (p ExternalPackage) DisplayName() string {
	u := strings.TrimRight(p.RepositoryURL, "/")
	if i := strings.LastIndex(u, ":"); i >= 0 && !strings.Contains(u[i:], "/") {
		// scp-like urls without a path separator after the host, git@host:repo.git
		u = u[i+1:]
	}
	return strings.TrimSuffix(path.Base(u), repositoryExtension)
}

func (p ExternalPackage) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.RepositoryURL, validation.Required, validation.Match(nonBlankRegex)),
		validation.Field(&p.Version, validation.Required, validation.By(isSemanticVersion)),
		validation.Field(&p.Products,
			validation.Required,
			validation.Each(validation.Required, validation.Match(nonBlankRegex)),
			validation.By(hasDistinctItems),
		),
	)
}

func isSemanticVersion(value interface{}) error {
	s, _ := value.(string)
	if _, err := semver.StrictNewVersion(s); err != nil {
		return fmt.Errorf("must be a semantic version: %w", err)
	}
	return nil
}

func hasDistinctItems(value interface{}) error {
	items, _ := value.([]string)
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, found := seen[item]; found {
			return errors.New("duplicate product " + item)
		}
		seen[item] = struct{}{}
	}
	return nil
}
