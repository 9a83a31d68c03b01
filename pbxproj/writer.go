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
	"strconv"
	"strings"

	"github.com/soapywu/pbxproj/pbxobject"
)

const (
	INDENT = "\t"

	// Xcode writes section entries two levels deep: inside the root
	// dictionary and inside "objects".
	entryIndentLevel = 2
)

var unquotedRegex = regexp.MustCompile(`^[A-Za-z0-9_$./]+$`)

// quoted renders a string value the way Xcode does: bare when it only holds
// safe characters, otherwise in double quotes with escapes.
func quoted(s string) string {
	if unquotedRegex.MatchString(s) {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}

// PbxWriter renders pbxobject values in project file layout. The base prefix
// is the indentation of the line being written next to, so new text lines up
// with whatever the file already uses.
type PbxWriter struct {
	sb          strings.Builder
	base        string
	indentLevel int
}

func newPbxWriter(base string, indentLevel int) *PbxWriter {
	return &PbxWriter{base: base, indentLevel: indentLevel}
}

func indent(x int) string {
	if x <= 0 {
		return ""
	}
	return strings.Repeat(INDENT, x)
}

func (w *PbxWriter) write(format string, args ...interface{}) {
	w.sb.WriteString(w.base)
	w.sb.WriteString(indent(w.indentLevel))
	fmt.Fprintf(&w.sb, format, args...)
}

func (w *PbxWriter) writeNoIndent(format string, args ...interface{}) {
	fmt.Fprintf(&w.sb, format, args...)
}

func (w *PbxWriter) String() string {
	return w.sb.String()
}

func formatScalar(val interface{}) (string, bool) {
	switch v := val.(type) {
	case string:
		return quoted(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	}
	return "", false
}

func formatReference(ref pbxobject.CommentValue) string {
	if ref.Comment == "" {
		return ref.Value
	}
	return fmt.Sprintf("%s /* %s */", ref.Value, ref.Comment)
}

// writeSection writes a whole `/* Begin kind section */` block, preceded by
// the blank line Xcode keeps between sections.
func (w *PbxWriter) writeSection(kind string, section pbxobject.Object) {
	w.writeNoIndent("\n%s\n", beginSectionMarker(kind))
	w.writeEntries(section)
	w.writeNoIndent("%s\n", endSectionMarker(kind))
}

// writeEntries writes every id => object pair of section, commented with the
// value stored under the id's comment key.
func (w *PbxWriter) writeEntries(section pbxobject.Object) {
	section.ForeachWithFilter(func(key string, val interface{}) pbxobject.IterateAction {
		obj, ok := val.(pbxobject.Object)
		if !ok {
			return pbxobject.IterateContinue
		}
		cmt := section.Comment(key)
		if obj.GetString("isa") == "PBXBuildFile" {
			w.writeInlineObject(key, cmt, obj)
			return pbxobject.IterateContinue
		}
		if cmt != "" {
			w.write("%s /* %s */ = {\n", key, cmt)
		} else {
			w.write("%s = {\n", key)
		}
		w.indentLevel++
		w.writeObject(obj)
		w.indentLevel--
		w.write("};\n")
		return pbxobject.IterateContinue
	}, pbxobject.NonComments)
}

func (w *PbxWriter) writeObject(obj pbxobject.Object) {
	obj.ForeachWithFilter(func(key string, val interface{}) pbxobject.IterateAction {
		switch v := val.(type) {
		case []pbxobject.CommentValue:
			w.writeArray(key, v)
		case pbxobject.Object:
			w.write("%s = {\n", key)
			w.indentLevel++
			w.writeObject(v)
			w.indentLevel--
			w.write("};\n")
		default:
			str, ok := formatScalar(v)
			if !ok {
				panic(fmt.Sprintf("pbxproj: cannot write %s of type %T", key, val))
			}
			if cmt := obj.Comment(key); cmt != "" {
				w.write("%s = %s /* %s */;\n", key, str, cmt)
			} else {
				w.write("%s = %s;\n", key, str)
			}
		}
		return pbxobject.IterateContinue
	}, pbxobject.NonComments)
}

func (w *PbxWriter) writeArray(name string, arr []pbxobject.CommentValue) {
	w.write("%s = (\n", name)
	w.indentLevel++
	w.writeArrayItems(arr)
	w.indentLevel--
	w.write(");\n")
}

func (w *PbxWriter) writeArrayItems(arr []pbxobject.CommentValue) {
	for _, ref := range arr {
		w.write("%s,\n", formatReference(ref))
	}
}

// writeInlineArray writes `name = (A /* a */, B /* b */, ); ` for objects
// that are laid out on a single line.
func (w *PbxWriter) writeInlineArray(name string, arr []pbxobject.CommentValue) {
	items := make([]string, len(arr))
	for i, ref := range arr {
		items[i] = formatReference(ref) + ", "
	}
	w.writeNoIndent("%s = (%s); ", name, strings.Join(items, ""))
}

func (w *PbxWriter) writeInlineObject(name, desc string, ref pbxobject.Object) {
	output := []string{}
	if desc != "" {
		output = append(output, fmt.Sprintf("%s /* %s */ = {", name, desc))
	} else {
		output = append(output, fmt.Sprintf("%s = {", name))
	}
	ref.ForeachWithFilter(func(key string, val interface{}) pbxobject.IterateAction {
		str, ok := formatScalar(val)
		if !ok {
			panic(fmt.Sprintf("pbxproj: cannot inline %s of type %T", key, val))
		}
		if cmt := ref.Comment(key); cmt != "" {
			output = append(output, fmt.Sprintf("%s = %s /* %s */; ", key, str, cmt))
		} else {
			output = append(output, fmt.Sprintf("%s = %s; ", key, str))
		}
		return pbxobject.IterateContinue
	}, pbxobject.NonComments)
	output = append(output, "};")
	w.write("%s\n", strings.Join(output, ""))
}
