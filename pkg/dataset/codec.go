package dataset

import (
	jsoniter "github.com/json-iterator/go"
)

// numbers keeps JSON numbers as json.Number, so 64-bit integers of
// MongoDB survive decoding without rounding through float64.
var numbers = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// Decode unmarshals JSON into v, keeping numbers as json.Number literals.
func Decode(bs []byte, v any) error {
	return numbers.Unmarshal(bs, v)
}
