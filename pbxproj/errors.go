package pbxproj

import (
	"errors"
	"fmt"
)

var (
	// ErrNotParseable is returned by Parse when no root object can be found.
	ErrNotParseable = errors.New("pbxproj: no rootObject found, not a project file")

	ErrNoTarget    = errors.New("pbxproj: no build target found")
	ErrNoLinkPhase = errors.New("pbxproj: no link phase found")

	// ErrIdsExhausted means the id source kept returning identifiers that are
	// already taken.
	ErrIdsExhausted = errors.New("pbxproj: could not generate a unique object id")
)

// AnchorError reports a splice whose textual anchor is missing or ambiguous.
// No output is produced when one occurs.
type AnchorError struct {
	Step   string
	Anchor string
	Found  int
}

func (e *AnchorError) Error() string {
	if e.Found == 0 {
		return fmt.Sprintf("pbxproj: %s: anchor %q not found", e.Step, e.Anchor)
	}
	return fmt.Sprintf("pbxproj: %s: anchor %q found %d times, expected exactly one", e.Step, e.Anchor, e.Found)
}

func anchorError(step, anchor string, found int) error {
	return &AnchorError{Step: step, Anchor: anchor, Found: found}
}
