package config

import "sync/atomic"

var current atomic.Pointer[Document]

// Init loads the file at path and, on success, publishes it as the
// process-wide configuration. A failed load leaves the previous
// configuration in place.
func Init(path string) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	Set(doc)
	return nil
}

// Get returns the most recently published configuration, or nil if
// nothing has been loaded.
func Get() *Document {
	return current.Load()
}

// MustGet is like Get but panics when nothing has been loaded.
func MustGet() *Document {
	doc := current.Load()
	if doc == nil {
		panic("config: no configuration loaded")
	}
	return doc
}

// Set replaces the process-wide configuration. The last write wins.
func Set(doc *Document) {
	current.Store(doc)
}
