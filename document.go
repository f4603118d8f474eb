package mailwalk

// Document represents a JSON object, defined as an ordered collection of
// key-value pairs in the order they appear in the source text. Each entry in
// the document is represented by an Entry.
//
// Decoded scalars are string, bool, nil, or, for numbers, the raw
// jsontext.Value as it appeared in the source.
type Document []Entry

// Array represents a JSON array, defined as a slice of values of any type.
type Array []any

// Entry represents a single entry in a document. It consists of a string key
// and an associated value of any type.
type Entry struct {
	Key   string
	Value any
}

// Short aliases used throughout the package and its tests.
type (
	D = Document
	A = Array
	E = Entry
)
