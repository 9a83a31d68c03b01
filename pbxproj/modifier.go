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
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/soapywu/pbxproj/pbxobject"
)

// objectsCloseRegex matches the line closing the "objects" dictionary, the
// one right before the rootObject assignment.
var objectsCloseRegex = regexp.MustCompile(`(?m)^[ \t]*\};[ \t]*\r?\n[ \t]*rootObject\s*=`)

type ModifierOption func(m *Modifier)

func WithLogger(logger hclog.Logger) ModifierOption {
	return func(m *Modifier) {
		m.logger = logger
	}
}

// WithIdSource replaces the random source used for new object ids.
func WithIdSource(source IdSource) ModifierOption {
	return func(m *Modifier) {
		m.idSource = source
	}
}

// Modifier splices Swift package dependencies into a parsed project file.
// It performs no I/O; callers persist the returned text themselves.
type Modifier struct {
	logger   hclog.Logger
	idSource IdSource
}

func NewModifier(options ...ModifierOption) *Modifier {
	m := &Modifier{
		logger:   hclog.NewNullLogger(),
		idSource: RandomObjectId,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// AddPackages is NewModifier().AddPackages.
func AddPackages(doc *ParsedDocument, packages []ExternalPackage) (string, error) {
	return NewModifier().AddPackages(doc, packages)
}

type packageReference struct {
	Uuid     string
	Name     string
	Package  ExternalPackage
	Products []*productDependency
}

func (r *packageReference) comment() string {
	return fmt.Sprintf(`%s "%s"`, XCRemoteSwiftPackageReferenceSection, r.Name)
}

type productDependency struct {
	Uuid          string
	BuildFileUuid string
	ProductName   string
	Package       *packageReference
}

func (d *productDependency) buildFileComment() string {
	return fmt.Sprintf("%s in %s", d.ProductName, frameworksGroup)
}

// AddPackages returns doc's content with every package declared and every
// product linked into the main target. The content comes back unchanged when
// packages is empty or the project already declares Swift packages. Any
// missing or ambiguous anchor fails the whole operation.
func (m *Modifier) AddPackages(doc *ParsedDocument, packages []ExternalPackage) (string, error) {
	if doc == nil {
		return "", ErrNotParseable
	}
	content := doc.Content()
	if len(packages) == 0 {
		m.logger.Debug("no packages requested, project left unchanged")
		return content, nil
	}
	if doc.HasExternalPackages() || strings.Contains(content, PackageReferenceSignature) {
		m.logger.Info("swift packages already configured, project left unchanged")
		return content, nil
	}

	targetId, ok := doc.MainTargetId()
	if !ok {
		return "", ErrNoTarget
	}
	phaseId, ok := doc.FrameworksPhaseId()
	if !ok {
		return "", ErrNoLinkPhase
	}
	for i, pkg := range packages {
		if err := pkg.Validate(); err != nil {
			return "", fmt.Errorf("pbxproj: package %d (%s): %w", i, pkg.RepositoryURL, err)
		}
	}

	refs, err := newPackageReferences(newIdAllocator(content, m.idSource), packages)
	if err != nil {
		return "", err
	}

	p := &pbxPatch{
		content:   content,
		buf:       newSpliceBuffer(content),
		logger:    m.logger,
		packages:  refs,
		projectId: doc.ProjectId(),
		targetId:  targetId,
		phaseId:   phaseId,
	}
	steps := []func() error{
		p.addToXCRemoteSwiftPackageReferenceSection,
		p.addToXCSwiftPackageProductDependencySection,
		p.addToPbxBuildFileSection,
		p.addToPbxFrameworksBuildPhase,
		p.addToPbxProjectSection,
		p.addToPbxNativeTargetSection,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return "", err
		}
	}

	m.logger.Debug("swift packages added", "packages", len(refs), "insertions", p.buf.Len())
	return p.buf.String(), nil
}

func newPackageReferences(uuids *idAllocator, packages []ExternalPackage) ([]*packageReference, error) {
	refs := make([]*packageReference, 0, len(packages))
	for _, pkg := range packages {
		id, err := uuids.generateUuid()
		if err != nil {
			return nil, err
		}
		ref := &packageReference{Uuid: id, Name: pkg.DisplayName(), Package: pkg}
		for _, product := range pkg.Products {
			depId, err := uuids.generateUuid()
			if err != nil {
				return nil, err
			}
			buildFileId, err := uuids.generateUuid()
			if err != nil {
				return nil, err
			}
			ref.Products = append(ref.Products, &productDependency{
				Uuid:          depId,
				BuildFileUuid: buildFileId,
				ProductName:   product,
				Package:       ref,
			})
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// pbxPatch holds one AddPackages run. Every step locates its anchor in the
// original content and queues an insertion; nothing is applied until all
// steps succeeded.
type pbxPatch struct {
	content   string
	buf       *spliceBuffer
	logger    hclog.Logger
	packages  []*packageReference
	projectId string
	targetId  string
	phaseId   string
}

func (p *pbxPatch) productDependencies() []*productDependency {
	var deps []*productDependency
	for _, ref := range p.packages {
		deps = append(deps, ref.Products...)
	}
	return deps
}

func (p *pbxPatch) objectsCloseAnchor(step string) (int, error) {
	locs := objectsCloseRegex.FindAllStringIndex(p.content, -1)
	if len(locs) != 1 {
		return 0, anchorError(step, "}; rootObject =", len(locs))
	}
	return locs[0][0], nil
}

func (p *pbxPatch) addToXCRemoteSwiftPackageReferenceSection() error {
	const step = "package references"
	at, err := p.objectsCloseAnchor(step)
	if err != nil {
		return err
	}

	section := pbxobject.NewObject()
	for _, ref := range p.packages {
		section.SetWithComment(ref.Uuid, pbxobject.NewObjectWithData([]pbxobject.Item{
			pbxobject.NewItem("isa", XCRemoteSwiftPackageReferenceSection),
			pbxobject.NewItem("repositoryURL", ref.Package.RepositoryURL),
			pbxobject.NewItem("requirement", pbxobject.NewObjectWithData([]pbxobject.Item{
				pbxobject.NewItem("kind", requirementKindUpToNextMajor),
				pbxobject.NewItem("minimumVersion", ref.Package.Version),
			})),
		}), ref.comment())
	}

	w := newPbxWriter("", entryIndentLevel)
	w.writeSection(XCRemoteSwiftPackageReferenceSection, section)
	p.buf.insert(at, w.String())
	p.logger.Trace("queued section", "step", step, "entries", section.Size()/2)
	return nil
}

func (p *pbxPatch) addToXCSwiftPackageProductDependencySection() error {
	const step = "product dependencies"
	at, err := p.objectsCloseAnchor(step)
	if err != nil {
		return err
	}

	section := pbxobject.NewObject()
	for _, dep := range p.productDependencies() {
		obj := pbxobject.NewObjectWithData([]pbxobject.Item{
			pbxobject.NewItem("isa", XCSwiftPackageProductDependencySection),
		})
		obj.SetWithComment("package", dep.Package.Uuid, dep.Package.comment())
		obj.Set("productName", dep.ProductName)
		section.SetWithComment(dep.Uuid, obj, dep.ProductName)
	}

	// Same offset as the package references: queued later, so written after them.
	w := newPbxWriter("", entryIndentLevel)
	w.writeSection(XCSwiftPackageProductDependencySection, section)
	p.buf.insert(at, w.String())
	p.logger.Trace("queued section", "step", step, "entries", section.Size()/2)
	return nil
}

func (p *pbxPatch) addToPbxBuildFileSection() error {
	const step = "build files"
	marker := endSectionMarker(PBXBuildFileSection)
	if n := strings.Count(p.content, marker); n != 1 {
		return anchorError(step, marker, n)
	}
	at := lineStart(p.content, strings.Index(p.content, marker))

	section := pbxobject.NewObject()
	for _, dep := range p.productDependencies() {
		obj := pbxobject.NewObjectWithData([]pbxobject.Item{
			pbxobject.NewItem("isa", "PBXBuildFile"),
		})
		obj.SetWithComment("productRef", dep.Uuid, dep.ProductName)
		section.SetWithComment(dep.BuildFileUuid, obj, dep.buildFileComment())
	}

	w := newPbxWriter("", entryIndentLevel)
	w.writeEntries(section)
	p.buf.insert(at, w.String())
	p.logger.Trace("queued entries", "step", step, "entries", section.Size()/2)
	return nil
}

func (p *pbxPatch) addToPbxFrameworksBuildPhase() error {
	const step = "frameworks build phase"
	open, close, err := findObject(p.content, PBXFrameworksBuildPhaseSection, p.phaseId, step)
	if err != nil {
		return err
	}

	var refs []pbxobject.CommentValue
	for _, dep := range p.productDependencies() {
		refs = append(refs, pbxobject.CommentValue{Value: dep.BuildFileUuid, Comment: dep.buildFileComment()})
	}
	fields := topLevelFields(p.content, open+1, close, fieldFiles)
	if len(fields) != 1 {
		return anchorError(step, fieldFiles+" = (", len(fields))
	}
	return p.appendToList(step, fieldFiles, fields[0], close, refs)
}

func (p *pbxPatch) addToPbxProjectSection() error {
	const step = "project package references"
	open, close, err := findObject(p.content, PBXProjectSection, p.projectId, step)
	if err != nil {
		return err
	}

	var refs []pbxobject.CommentValue
	for _, ref := range p.packages {
		refs = append(refs, pbxobject.CommentValue{Value: ref.Uuid, Comment: ref.comment()})
	}
	return p.addListField(step, open, close, fieldPackageReferences, fieldTargets, refs)
}

func (p *pbxPatch) addToPbxNativeTargetSection() error {
	const step = "target product dependencies"
	open, close, err := findObject(p.content, PBXNativeTargetSection, p.targetId, step)
	if err != nil {
		return err
	}

	var refs []pbxobject.CommentValue
	for _, dep := range p.productDependencies() {
		refs = append(refs, pbxobject.CommentValue{Value: dep.Uuid, Comment: dep.ProductName})
	}
	return p.addListField(step, open, close, fieldPackageProductDependencies, fieldProductType, refs)
}

// addListField appends refs to the field list of the object in
// content[open:close]. Without such a list a new one is inserted right
// before the before field.
func (p *pbxPatch) addListField(step string, open, close int, field, before string, refs []pbxobject.CommentValue) error {
	existing := topLevelFields(p.content, open+1, close, field)
	switch len(existing) {
	case 0:
	case 1:
		return p.appendToList(step, field, existing[0], close, refs)
	default:
		return anchorError(step, field+" = (", len(existing))
	}

	anchors := topLevelFields(p.content, open+1, close, before)
	if len(anchors) != 1 {
		return anchorError(step, before+" =", len(anchors))
	}
	off := anchors[0]
	if startsLine(p.content, off) {
		w := newPbxWriter(indentAt(p.content, off), 0)
		w.writeArray(field, refs)
		p.buf.insert(lineStart(p.content, off), w.String())
	} else {
		w := newPbxWriter("", 0)
		w.writeInlineArray(field, refs)
		p.buf.insert(off, w.String())
	}
	p.logger.Trace("queued list", "step", step, "field", field, "entries", len(refs))
	return nil
}

// appendToList appends refs to the `field = ( ... );` list starting at
// fieldOff, keeping the trailing-comma layout Xcode uses.
func (p *pbxPatch) appendToList(step, field string, fieldOff, limit int, refs []pbxobject.CommentValue) error {
	content := p.content
	i := skipSpace(content, fieldOff+len(field), limit)
	if i < limit && content[i] == '=' {
		i = skipSpace(content, i+1, limit)
	}
	if i >= limit || content[i] != '(' {
		return anchorError(step, field+" = (", 0)
	}
	listClose, ok := matchingClose(content, i)
	if !ok || listClose > limit {
		return anchorError(step, field+" = ( ... )", 0)
	}

	// A last entry without its separator gets one, after any trailing comment.
	if last := lastSignificant(content, i+1, listClose, false); last >= 0 && content[last] != ',' {
		p.buf.insert(lastSignificant(content, i+1, listClose, true)+1, ",")
	}

	fieldIndent := indentAt(content, fieldOff)
	w := newPbxWriter(fieldIndent, 1)
	switch {
	case startsLine(content, listClose):
		w.writeArrayItems(refs)
		p.buf.insert(lineStart(content, listClose), w.String())
	case startsLine(content, fieldOff):
		w.writeNoIndent("\n")
		w.writeArrayItems(refs)
		w.writeNoIndent("%s", fieldIndent)
		p.buf.insert(listClose, w.String())
	default:
		for _, ref := range refs {
			w.writeNoIndent(" %s,", formatReference(ref))
		}
		w.writeNoIndent(" ")
		p.buf.insert(listClose, w.String())
	}
	p.logger.Trace("queued list entries", "step", step, "field", field, "entries", len(refs))
	return nil
}
