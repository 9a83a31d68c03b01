package pbxproj

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	rootObjectRegex = regexp.MustCompile(`rootObject\s*=\s*([0-9A-Fa-f]{24})\b`)
	packageRefRegex = regexp.MustCompile(`\b([0-9A-Fa-f]{24})\s*/\*\s*` + XCRemoteSwiftPackageReferenceSection + `\b`)
)

// ParsedDocument is the structural skeleton of a project file: the handful of
// object ids needed to splice Swift package entries into it. It is read only
// and produced fresh by every call to Parse.
type ParsedDocument struct {
	content             string
	rootObjectId        string
	projectId           string
	mainTargetId        string
	frameworksPhaseId   string
	hasExternalPackages bool
	existingPackageRefs []string
}

// Parse extracts a ParsedDocument from the text of a project.pbxproj file.
// It fails with ErrNotParseable only when no root object is declared; a
// missing target or frameworks phase is reported later by the modifier.
func Parse(content string) (*ParsedDocument, error) {
	m := rootObjectRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, ErrNotParseable
	}

	doc := &ParsedDocument{
		content:             content,
		rootObjectId:        m[1],
		projectId:           firstSectionEntry(content, PBXProjectSection),
		mainTargetId:        firstSectionEntry(content, PBXNativeTargetSection),
		frameworksPhaseId:   firstSectionEntry(content, PBXFrameworksBuildPhaseSection),
		hasExternalPackages: strings.Contains(content, PackageReferenceSignature),
	}
	if doc.projectId == "" {
		doc.projectId = doc.rootObjectId
	}

	seen := make(map[string]struct{})
	for _, m := range packageRefRegex.FindAllStringSubmatch(content, -1) {
		if _, found := seen[m[1]]; found {
			continue
		}
		seen[m[1]] = struct{}{}
		doc.existingPackageRefs = append(doc.existingPackageRefs, m[1])
	}
	return doc, nil
}

// firstSectionEntry returns the id directly following the begin marker of
// the first section of kind, or "" when the section is absent or empty.
func firstSectionEntry(content, kind string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(beginSectionMarker(kind)) + `\s*([0-9A-Fa-f]{24})\b`)
	begin := strings.Index(content, beginSectionMarker(kind))
	if begin < 0 {
		return ""
	}
	m := re.FindStringSubmatchIndex(content[begin:])
	if m == nil || m[0] != 0 {
		return ""
	}
	return content[begin+m[2] : begin+m[3]]
}

func (d *ParsedDocument) Content() string {
	return d.content
}

func (d *ParsedDocument) RootObjectId() string {
	return d.rootObjectId
}

// ProjectId is the PBXProject object id, or the root object id when the
// file has no readable PBXProject section.
func (d *ParsedDocument) ProjectId() string {
	return d.projectId
}

func (d *ParsedDocument) MainTargetId() (string, bool) {
	return d.mainTargetId, d.mainTargetId != ""
}

func (d *ParsedDocument) FrameworksPhaseId() (string, bool) {
	return d.frameworksPhaseId, d.frameworksPhaseId != ""
}

func (d *ParsedDocument) HasExternalPackages() bool {
	return d.hasExternalPackages
}

func (d *ParsedDocument) ExistingPackageRefs() []string {
	refs := make([]string, len(d.existingPackageRefs))
	copy(refs, d.existingPackageRefs)
	return refs
}

func (d *ParsedDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RootObjectId        string   `json:"rootObjectId"`
		ProjectId           string   `json:"projectId"`
		MainTargetId        string   `json:"mainTargetId,omitempty"`
		FrameworksPhaseId   string   `json:"frameworksPhaseId,omitempty"`
		HasExternalPackages bool     `json:"hasExternalPackages"`
		ExistingPackageRefs []string `json:"existingPackageRefs"`
	}{
		RootObjectId:        d.rootObjectId,
		ProjectId:           d.projectId,
		MainTargetId:        d.mainTargetId,
		FrameworksPhaseId:   d.frameworksPhaseId,
		HasExternalPackages: d.hasExternalPackages,
		ExistingPackageRefs: d.ExistingPackageRefs(),
	})
}
