package document

import (
	"reflect"
	"sync"
)

var (
	documenterType = reflect.TypeOf((*Documenter)(nil)).Elem()
	metaType       = reflect.TypeOf(Meta{})
)

// Default is the process-wide registry used by Add and MustAdd.
var Default = NewRegistry()

// Add adds candidate types to the Default registry.
func Add(models ...any) error {
	return Default.Add(models...)
}

// MustAdd is like Add but panics on error. It is meant for init functions.
func MustAdd(models ...any) {
	if err := Default.Add(models...); err != nil {
		panic(err)
	}
}

type candidate struct {
	desc   Descriptor
	marked bool
}

// Registry is an ordered table of candidate types. It implements
// Enumerator: only candidates carrying the marker are enumerated.
type Registry struct {
	mu    sync.RWMutex
	items []candidate
	index map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add records the types of the given models as candidates. Models can be
// values or pointers of named types. Adding a type twice is a no-op.
func (r *Registry) Add(models ...any) error {
	for _, m := range models {
		c, err := inspect(m)
		if err != nil {
			return err
		}
		r.put(c, false)
	}
	return nil
}

// AddWithMarker records the type of model as a marked candidate with the
// given marker, replacing whatever marker the type declares itself.
func (r *Registry) AddWithMarker(model any, m Marker) error {
	c, err := inspect(model)
	if err != nil {
		return err
	}
	c.desc.Marker = m
	c.marked = true
	r.put(c, true)
	return nil
}

// Len returns the number of candidates, marked or not.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Documents returns marked candidates under the namespace in the order
// they were added.
func (r *Registry) Documents(namespace string) ([]Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []Descriptor
	for _, v := range r.items {
		if !v.marked || !InNamespace(v.desc.Namespace, namespace) {
			continue
		}
		res = append(res, v.desc)
	}
	return res, nil
}

func (r *Registry) put(c candidate, replace bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.desc.FullName()
	if i, ok := r.index[key]; ok {
		if replace {
			r.items[i] = c
		}
		return
	}
	r.index[key] = len(r.items)
	r.items = append(r.items, c)
}

// inspect builds a candidate from a model, reading its marker from
// DocumentMarker or from an embedded Meta field.
func inspect(model any) (candidate, error) {
	var res candidate
	if model == nil {
		return res, InvalidModelError(model)
	}

	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return res, InvalidModelError(model)
	}

	res.desc = Descriptor{
		Namespace: t.PkgPath(),
		Name:      t.Name(),
		Type:      t,
	}

	if reflect.PointerTo(t).Implements(documenterType) {
		d := reflect.New(t).Interface().(Documenter)
		res.desc.Marker = d.DocumentMarker()
		res.marked = true
		return res, nil
	}

	if t.Kind() != reflect.Struct {
		return res, nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous || f.Type != metaType {
			continue
		}
		res.desc.Marker = Marker{
			Value:      f.Tag.Get("document"),
			Collection: f.Tag.Get("collection"),
		}
		res.marked = true
		break
	}
	return res, nil
}
