package theme

import (
	"slices"
	"sync"
)

// ClassList is the set of style classes on the root document element.
type ClassList interface {
	Add(classes ...string)
	Remove(classes ...string)
	Has(class string) bool
}

// Document is an in-memory ClassList. Classes keep insertion order and are
// never duplicated.
type Document struct {
	mu      sync.RWMutex
	classes []string
}

// NewDocument returns a Document holding the given classes.
func NewDocument(classes ...string) *Document {
	d := &Document{}
	d.Add(classes...)
	return d
}

func (d *Document) Add(classes ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range classes {
		if c != "" && !slices.Contains(d.classes, c) {
			d.classes = append(d.classes, c)
		}
	}
}

func (d *Document) Remove(classes ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classes = slices.DeleteFunc(d.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

func (d *Document) Has(class string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.classes, class)
}

// Classes returns a copy of the current classes.
func (d *Document) Classes() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.classes)
}
