package pbxproj

import (
	"fmt"
	"sort"
	"strings"
)

type splice struct {
	offset int
	seq    int
	text   string
}

// spliceBuffer collects insertions against an unchanged base text and applies
// them in a single pass. Insertions at the same offset keep the order in
// which they were added, so later steps land after earlier ones.
type spliceBuffer struct {
	base    string
	splices []splice
}

func newSpliceBuffer(base string) *spliceBuffer {
	return &spliceBuffer{base: base}
}

func (b *spliceBuffer) insert(offset int, text string) {
	if offset < 0 || offset > len(b.base) {
		panic(fmt.Sprintf("pbxproj: splice offset %d out of range [0, %d]", offset, len(b.base)))
	}
	if text == "" {
		return
	}
	b.splices = append(b.splices, splice{offset: offset, seq: len(b.splices), text: text})
}

func (b *spliceBuffer) Len() int {
	return len(b.splices)
}

func (b *spliceBuffer) String() string {
	ordered := make([]splice, len(b.splices))
	copy(ordered, b.splices)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].offset < ordered[j].offset
	})

	size := len(b.base)
	for _, s := range ordered {
		size += len(s.text)
	}

	var sb strings.Builder
	sb.Grow(size)
	last := 0
	for _, s := range ordered {
		sb.WriteString(b.base[last:s.offset])
		sb.WriteString(s.text)
		last = s.offset
	}
	sb.WriteString(b.base[last:])
	return sb.String()
}
