package graph

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/vsariola/gensyn"
)

// directory maps external names to instances for the command layer. An
// instance has at most one name.
type directory struct {
	byName map[string]Handle
	names  map[Handle]string
}

func newDirectory() directory {
	return directory{byName: map[string]Handle{}, names: map[Handle]string{}}
}

func (d *directory) forget(h Handle) {
	if name, ok := d.names[h]; ok {
		delete(d.names, h)
		delete(d.byName, name)
	}
}

// Add instantiates a gate of the given class and registers it under name.
func (t *Tx) Add(class, name string) (Handle, error) {
	if name == "" {
		return Handle{}, gensyn.ErrEmptyName
	}
	if _, exists := t.g.directory.byName[name]; exists {
		return Handle{}, fmt.Errorf("%w: a gate named %q already exists", gensyn.ErrDuplicateName, name)
	}
	h, err := t.Instantiate(class)
	if err != nil {
		return Handle{}, err
	}
	t.g.directory.byName[name] = h
	t.g.directory.names[h] = name
	return h, nil
}

// AddAnonymous instantiates a gate of the given class under a generated,
// unique name, which is returned.
func (t *Tx) AddAnonymous(class string) (Handle, string, error) {
	name := class + "-" + uuid.New().String()
	h, err := t.Add(class, name)
	return h, name, err
}

// Lookup returns the instance registered under name.
func (t *Tx) Lookup(name string) (Handle, bool) {
	h, ok := t.g.directory.byName[name]
	return h, ok
}

// NameOf returns the name of an instance, if it has one.
func (t *Tx) NameOf(h Handle) (string, bool) {
	name, ok := t.g.directory.names[h]
	return name, ok
}

// Remove destroys the instance registered under name.
func (t *Tx) Remove(name string) error {
	h, ok := t.g.directory.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", gensyn.ErrUnknownGate, name)
	}
	return t.Destroy(h)
}

// Names returns the names of all registered instances in sorted order.
func (t *Tx) Names() []string {
	ret := make([]string, 0, len(t.g.directory.byName))
	for name := range t.g.directory.byName {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
