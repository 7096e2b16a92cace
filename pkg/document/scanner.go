package document

import (
	"log/slog"
	"maps"
	"slices"
)

// Enumerator lists the marked document types under a namespace.
// An empty namespace means every type the enumerator knows about.
// Callers must not rely on the order of the result.
type Enumerator interface {
	Documents(namespace string) ([]Descriptor, error)
}

// ScanResult maps resolved collection names to descriptors.
type ScanResult map[string]Descriptor

// Collections returns the collection names in sorted order.
func (r ScanResult) Collections() []string {
	return slices.Sorted(maps.Keys(r))
}

// ByFullName returns the descriptor whose qualified type name is name.
func (r ScanResult) ByFullName(name string) (Descriptor, bool) {
	for _, d := range r {
		if d.FullName() == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Option configures a Scanner.
type Option func(*Scanner)

// OptStrict makes the scanner fail when two distinct types resolve to the
// same collection name. Without it the type enumerated last wins.
func OptStrict(b bool) Option {
	return func(s *Scanner) {
		s.strict = b
	}
}

// Scanner builds ScanResults from an Enumerator. It keeps no state
// between scans and is safe for concurrent use.
type Scanner struct {
	enum   Enumerator
	strict bool
}

// NewScanner creates a Scanner. A nil enumerator means the Default
// registry.
func NewScanner(enum Enumerator, opts ...Option) *Scanner {
	if enum == nil {
		enum = Default
	}
	res := &Scanner{enum: enum}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Scan returns a fresh mapping from collection name to descriptor for
// every marked type under basePackage. Enumeration errors are returned
// as is, without a partial result.
func (s *Scanner) Scan(basePackage string) (ScanResult, error) {
	docs, err := s.enum.Documents(basePackage)
	if err != nil {
		return nil, err
	}

	res := make(ScanResult, len(docs))
	for _, d := range docs {
		name := d.Collection()
		if prev, ok := res[name]; ok && !prev.SameType(d) {
			if s.strict {
				return nil, DuplicateCollectionError(name, prev, d)
			}
			slog.Warn("Collection name is used by more than one document",
				"collection", name,
				"replaced", prev.FullName(),
				"by", d.FullName(),
			)
		}
		res[name] = d
	}

	slog.Debug("Scanned documents",
		"base_package", basePackage,
		"documents", len(res),
	)
	return res, nil
}
