// Package projectfile locates, reads and atomically rewrites project.pbxproj
// files.
package projectfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/soapywu/pbxproj/pbxproj"
)

const (
	// FileName is the name of the project file inside a .xcodeproj bundle.
	FileName = "project.pbxproj"

	bundleExt = ".xcodeproj"
)

// searchPatterns are tried in order when no project path is given.
var searchPatterns = []string{"*" + bundleExt, filepath.Join("ios", "*"+bundleExt)}

var ErrNotFound = errors.New("no .xcodeproj found")

// Resolve turns path into the location of a project.pbxproj. A .xcodeproj
// directory resolves to the file inside it. An empty path searches the working
// directory and then ios/ for exactly one .xcodeproj bundle.
func Resolve(fs afero.Fs, path string) (string, error) {
	if path == "" {
		return discover(fs)
	}

	if strings.HasSuffix(strings.TrimSuffix(path, string(filepath.Separator)), bundleExt) {
		return filepath.Join(path, FileName), nil
	}
	if isDir, err := afero.IsDir(fs, path); err == nil && isDir {
		return filepath.Join(path, FileName), nil
	}
	return path, nil
}

func discover(fs afero.Fs) (string, error) {
	for _, pattern := range searchPatterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return "", fmt.Errorf("error searching for %s: %w", pattern, err)
		}
		switch len(matches) {
		case 0:
			continue
		case 1:
			return filepath.Join(matches[0], FileName), nil
		default:
			return "", fmt.Errorf("found %d .xcodeproj bundles (%s), pass one explicitly",
				len(matches), strings.Join(matches, ", "))
		}
	}
	return "", ErrNotFound
}

// Load reads and parses the project file at path.
func Load(fs afero.Fs, path string) (*pbxproj.ParsedDocument, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading project file: %w", err)
	}
	doc, err := pbxproj.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return doc, nil
}

// Save replaces the file at path with content. The data is written to a
// temporary file in the same directory and renamed over the original, so a
// failed write leaves the original untouched. The original permissions are
// kept.
func Save(fs afero.Fs, path, content string) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temporary file: %w", err)
	}
	if err = fs.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing project file: %w", err)
	}
	return nil
}
