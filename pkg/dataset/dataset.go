// Package dataset reads, writes and re-keys MongoDB data sets.
//
// A data set is a JSON object. Each key names a document type (by its
// qualified Go type name) or a collection, and each value is an array of
// records:
//
//	{
//	  "github.com/acme/app/model.Order": [
//	    {"_id": {"$oid": "5c8f8b6e2f1d4a0001a1b2c3"}, "total": 10.5}
//	  ],
//	  "audit_log": []
//	}
//
// Values follow MongoDB relaxed Extended JSON, so ObjectIDs, dates and
// other BSON types survive a round trip through the database. Numbers are
// kept as json.Number with their literal text, so expected and actual
// values compare by that text and int64 values are never rounded.
package dataset

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/jupiter-tools/mongotest/pkg/document"
)

// Record is one document with JSON-typed values.
type Record = map[string]any

// DataSet holds records grouped by document type or collection name.
type DataSet map[string][]Record

// Keys returns data set keys in sorted order.
func (ds DataSet) Keys() []string {
	return slices.Sorted(maps.Keys(ds))
}

// Len returns the total number of records.
func (ds DataSet) Len() int {
	var res int
	for _, v := range ds {
		res += len(v)
	}
	return res
}

// Parse reads a data set from a Text.
func Parse(text Text) (DataSet, error) {
	src := source(text)
	s, err := text.Read()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) == "" {
		return nil, ParseError(src, fmt.Errorf("empty data set"))
	}

	var raw map[string]any
	if err = Decode([]byte(s), &raw); err != nil {
		return nil, ParseError(src, err)
	}

	res := make(DataSet, len(raw))
	for k, v := range raw {
		items, ok := v.([]any)
		if !ok {
			return nil, ParseError(src,
				fmt.Errorf("value of %q is not an array", k))
		}
		recs := make([]Record, 0, len(items))
		for i, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				return nil, ParseError(src,
					fmt.Errorf("element %d of %q is not an object", i, k))
			}
			recs = append(recs, rec)
		}
		res[k] = recs
	}
	return res, nil
}

// Encode serializes the data set to JSON.
func (ds DataSet) Encode(pretty bool) ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: pretty}
	res, err := enc.Encode(ds)
	if err != nil {
		return nil, EncodeError(err)
	}
	return res, nil
}

// ByCollection returns a copy of the data set keyed by collection names.
// A key that is already a collection of the scan result is kept, a key
// equal to the qualified type name of a scanned document is replaced by
// that document's collection. Records of keys that land on the same
// collection are concatenated in key order.
func (ds DataSet) ByCollection(sr document.ScanResult) (DataSet, error) {
	res := make(DataSet, len(ds))
	for _, k := range ds.Keys() {
		coll, ok := CollectionFor(k, sr)
		if !ok {
			return nil, UnknownDocumentError(k, sr.Collections())
		}
		res[coll] = append(res[coll], ds[k]...)
	}
	return res, nil
}

// CollectionFor resolves a data set key to a collection name.
func CollectionFor(key string, sr document.ScanResult) (string, bool) {
	if _, ok := sr[key]; ok {
		return key, true
	}
	if d, ok := sr.ByFullName(key); ok {
		return d.Collection(), true
	}
	return "", false
}

func source(text Text) string {
	if s, ok := text.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", text)
}
