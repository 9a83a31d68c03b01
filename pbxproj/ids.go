package pbxproj

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/gofrs/uuid"
)

const (
	idLength = 24

	// maxIdAttempts bounds redraws so a broken id source fails instead of spinning.
	maxIdAttempts = 64
)

var objectIdRegex = regexp.MustCompile(`\b[0-9A-Fa-f]{24}\b`)

// IdSource draws a candidate object id. Ids must be 24 uppercase hexadecimal
// characters.
type IdSource func() (string, error)

// RandomObjectId draws 24 uppercase hex characters from a version 4 uuid,
// skipping the bytes that carry the version and variant bits so every
// character is uniformly random.
func RandomObjectId() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	b := make([]byte, 0, idLength/2)
	b = append(b, u[0:6]...)
	b = append(b, u[9:15]...)
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// idAllocator hands out object ids that appear neither in the original
// document nor among ids already handed out.
type idAllocator struct {
	source IdSource
	uuids  map[string]struct{}
}

func newIdAllocator(content string, source IdSource) *idAllocator {
	if source == nil {
		source = RandomObjectId
	}
	uuids := make(map[string]struct{})
	for _, id := range objectIdRegex.FindAllString(content, -1) {
		uuids[strings.ToUpper(id)] = struct{}{}
	}
	return &idAllocator{source: source, uuids: uuids}
}

func (a *idAllocator) generateUuid() (string, error) {
	for attempt := 0; attempt < maxIdAttempts; attempt++ {
		id, err := a.source()
		if err != nil {
			return "", err
		}
		if !isObjectId(id) {
			continue
		}
		if _, found := a.uuids[id]; found {
			continue
		}
		a.uuids[id] = struct{}{}
		return id, nil
	}
	return "", ErrIdsExhausted
}

func isObjectId(id string) bool {
	if len(id) != idLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
