// Package pbxobject holds the ordered object model used to build new pbxproj
// entries before they are rendered as text.
package pbxobject

import "strings"

type IterateAction = int8

const (
	IterateContinue IterateAction = iota
	IterateBreak
)

const commentKeySuffix = "_comment"

// CommentKey is the key under which the comment for key is stored. A value
// written as `fileRef = ABC /* Foo */;` is kept as "fileRef" and "fileRef_comment".
func CommentKey(key string) string {
	return key + commentKeySuffix
}

func IsCommentKey(key string) bool {
	return strings.HasSuffix(key, commentKeySuffix)
}

// CommentValue is a reference followed by its comment, as in list members.
type CommentValue struct {
	Value   string
	Comment string
}

type Item = SliceItem

func NewItem(key string, value interface{}) Item {
	return SliceItem{Key: key, Data: value}
}

type Object struct {
	*SliceMap
}

func NewObject() Object {
	return Object{SliceMap: NewSliceMap()}
}

func NewObjectWithData(items []Item) Object {
	o := NewObject()
	for _, item := range items {
		o.Set(item.Key, item.Data)
	}
	return o
}

func (o Object) IsEmpty() bool {
	if o.SliceMap == nil {
		return true
	}
	return o.Size() == 0
}

func (o Object) GetObject(key string) Object {
	if o.SliceMap == nil {
		return NewObject()
	}
	if value, ok := o.Get(key); ok {
		if obj, ok := value.(Object); ok {
			return obj
		}
	}
	return NewObject()
}

func (o Object) GetString(key string) string {
	if o.SliceMap == nil {
		return ""
	}
	if value, ok := o.Get(key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// Comment returns the comment attached to key, if any.
func (o Object) Comment(key string) string {
	return o.GetString(CommentKey(key))
}

// SetWithComment stores value under key and its comment under CommentKey(key).
func (o Object) SetWithComment(key string, value interface{}, comment string) {
	o.Set(key, value)
	o.Set(CommentKey(key), comment)
}

type ApplyFunc = func(key string, val interface{}) IterateAction
type FilterFunc = func(key string, val interface{}) bool

func (o Object) Foreach(apply ApplyFunc) {
	o.ForeachWithFilter(apply, func(string, interface{}) bool { return true })
}

func (o Object) ForeachWithFilter(apply ApplyFunc, filter FilterFunc) {
	if o.IsEmpty() {
		return
	}
	for _, item := range o.Items() {
		if item.Data == nil || !filter(item.Key, item.Data) {
			continue
		}
		if apply(item.Key, item.Data) == IterateBreak {
			break
		}
	}
}

// NonComments is a FilterFunc that skips comment keys.
func NonComments(key string, _ interface{}) bool {
	return !IsCommentKey(key)
}
