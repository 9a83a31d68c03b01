package pbxobject

type mapItem struct {
	data interface{}
	idx  int
}

// SliceItem is one key/value pair of a SliceMap, in insertion order.
type SliceItem struct {
	Key  string
	Data interface{}
}

// SliceMap is a map that remembers insertion order. pbxproj sections and
// objects are order sensitive, so every object in this package is backed by one.
type SliceMap struct {
	mp map[string]*mapItem
	sl []*SliceItem
}

func NewSliceMap() *SliceMap {
	return &SliceMap{
		mp: make(map[string]*mapItem),
		sl: make([]*SliceItem, 0),
	}
}

func (m *SliceMap) Get(key string) (interface{}, bool) {
	v, found := m.mp[key]
	if found {
		return v.data, true
	}
	return nil, false
}

// Set replaces the value in place when key exists, otherwise appends it.
func (m *SliceMap) Set(key string, v interface{}) {
	old, found := m.mp[key]
	if found {
		m.mp[key] = &mapItem{data: v, idx: old.idx}
		m.sl[old.idx] = &SliceItem{Key: key, Data: v}
		return
	}
	m.sl = append(m.sl, &SliceItem{Key: key, Data: v})
	m.mp[key] = &mapItem{data: v, idx: len(m.sl) - 1}
}

func (m *SliceMap) Has(key string) bool {
	_, found := m.mp[key]
	return found
}

func (m *SliceMap) Size() int {
	return len(m.sl)
}

func (m *SliceMap) Items() []*SliceItem {
	return m.sl
}

// Keys returns the keys in insertion order.
func (m *SliceMap) Keys() []string {
	keys := make([]string, len(m.sl))
	for i, item := range m.sl {
		keys[i] = item.Key
	}
	return keys
}
