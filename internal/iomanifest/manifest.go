// Package iomanifest reads document types from a YAML manifest. The CLI
// uses it because a separate binary cannot see the types registered by
// the application under test.
package iomanifest

import (
	"os"

	"github.com/jupiter-tools/mongotest/pkg/document"
	"gopkg.in/yaml.v3"
)

// Manifest is the content of a manifest file.
type Manifest struct {
	Documents []Entry `yaml:"documents"`
}

// Entry describes one candidate type.
type Entry struct {
	// Type is the qualified type name, e.g.
	// github.com/acme/app/model.Order.
	Type string `yaml:"type"`

	Value      string `yaml:"value,omitempty"`
	Collection string `yaml:"collection,omitempty"`

	// Document marks the type as a persisted document. Missing means true.
	Document *bool `yaml:"document,omitempty"`
}

func (e Entry) marked() bool {
	return e.Document == nil || *e.Document
}

type enumerator struct {
	path string
}

// New returns an Enumerator that reads the manifest at path on every
// call.
func New(path string) document.Enumerator {
	return &enumerator{path: path}
}

// Documents returns the marked entries under namespace in file order.
func (e *enumerator) Documents(namespace string) ([]document.Descriptor, error) {
	bs, err := os.ReadFile(e.path)
	if err != nil {
		return nil, ReadError(e.path, err)
	}
	return Decode(e.path, bs, namespace)
}

// Decode converts manifest content to descriptors. The src is only used
// in error messages.
func Decode(src string, bs []byte, namespace string) ([]document.Descriptor, error) {
	var m Manifest
	if err := yaml.Unmarshal(bs, &m); err != nil {
		return nil, ReadError(src, err)
	}

	var res []document.Descriptor
	for i, v := range m.Documents {
		ns, name, ok := document.ParseFullName(v.Type)
		if !ok {
			return nil, EntryError(src, i, v.Type)
		}
		if !v.marked() || !document.InNamespace(ns, namespace) {
			continue
		}
		res = append(res, document.Descriptor{
			Namespace: ns,
			Name:      name,
			Marker: document.Marker{
				Value:      v.Value,
				Collection: v.Collection,
			},
		})
	}
	return res, nil
}

// FromDescriptors builds a manifest out of scanned descriptors, sorted by
// collection name.
func FromDescriptors(sr document.ScanResult) Manifest {
	var res Manifest
	for _, v := range sr.Collections() {
		d := sr[v]
		res.Documents = append(res.Documents, Entry{
			Type:       d.FullName(),
			Value:      d.Marker.Value,
			Collection: d.Marker.Collection,
		})
	}
	return res
}

// Write stores a manifest at path.
func Write(path string, m Manifest) error {
	bs, err := yaml.Marshal(m)
	if err != nil {
		return WriteError(path, err)
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return WriteError(path, err)
	}
	return nil
}
