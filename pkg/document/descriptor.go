package document

import (
	"reflect"
	"strings"
)

// Descriptor identifies a discovered document type.
type Descriptor struct {
	// Namespace is the import path of the package declaring the type.
	Namespace string

	// Name is the simple (unqualified) type name.
	Name string

	// Marker holds the marker attributes found on the type.
	Marker Marker

	// Type is the Go type. It is nil when the descriptor was read from
	// a manifest rather than from a Registry.
	Type reflect.Type
}

// FullName returns the qualified type name, e.g.
// "github.com/acme/app/model.Order".
func (d Descriptor) FullName() string {
	if d.Namespace == "" {
		return d.Name
	}
	return d.Namespace + "." + d.Name
}

// Collection returns the resolved collection name.
func (d Descriptor) Collection() string {
	return Resolve(d.Name, d.Marker)
}

// SameType reports whether two descriptors identify the same type.
func (d Descriptor) SameType(o Descriptor) bool {
	return d.FullName() == o.FullName()
}

// ParseFullName splits a qualified type name into namespace and simple
// name. The split happens at the last dot after the last slash, so dots in
// host names ("github.com") stay in the namespace.
func ParseFullName(s string) (namespace, name string, ok bool) {
	s = strings.TrimSpace(s)
	slash := strings.LastIndex(s, "/")
	dot := strings.LastIndex(s, ".")
	if dot <= slash || dot == len(s)-1 {
		return "", "", false
	}
	namespace, name = s[:dot], s[dot+1:]
	if namespace == "" || strings.ContainsAny(name, " \t/") {
		return "", "", false
	}
	return namespace, name, true
}

// InNamespace reports whether a package path lies under the namespace.
// An empty namespace contains everything.
func InNamespace(pkgPath, namespace string) bool {
	namespace = strings.TrimRight(namespace, "/.")
	if namespace == "" {
		return true
	}
	if pkgPath == namespace {
		return true
	}
	return strings.HasPrefix(pkgPath, namespace+"/")
}
