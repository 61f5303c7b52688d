package seo

// MemoryHead is an in-memory Head that keeps elements in insertion order.
type MemoryHead struct {
	title    string
	elements []*memElement
}

type memElement struct {
	tag   Tag
	value string
}

// NewMemoryHead returns an empty head with the given title.
func NewMemoryHead(title string) *MemoryHead {
	return &MemoryHead{title: title}
}

func (h *MemoryHead) Title() string { return h.title }

func (h *MemoryHead) SetTitle(title string) { h.title = title }

func (h *MemoryHead) GetTag(t Tag) (string, bool) {
	if e := h.find(t); e != nil {
		return e.value, true
	}
	return "", false
}

func (h *MemoryHead) UpsertTag(t Tag, value string) {
	if e := h.find(t); e != nil {
		e.value = value
		return
	}
	h.elements = append(h.elements, &memElement{tag: t, value: value})
}

func (h *MemoryHead) RemoveTag(t Tag) {
	for i, e := range h.elements {
		if sameTarget(e.tag, t) {
			h.elements = append(h.elements[:i], h.elements[i+1:]...)
			return
		}
	}
}

// Tags returns the elements in document order.
func (h *MemoryHead) Tags() []Tag {
	out := make([]Tag, len(h.elements))
	for i, e := range h.elements {
		out[i] = e.tag
	}
	return out
}

// Len reports how many elements the head holds.
func (h *MemoryHead) Len() int { return len(h.elements) }

func (h *MemoryHead) find(t Tag) *memElement {
	for _, e := range h.elements {
		if sameTarget(e.tag, t) {
			return e
		}
	}
	return nil
}

func sameTarget(a, b Tag) bool {
	return a.Element == b.Element && a.KeyAttr == b.KeyAttr && a.Key == b.Key
}
