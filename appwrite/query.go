package appwrite

import "encoding/json"

// Query is one filter/sort/pagination instruction for ListDocuments. The REST
// API consumes these as JSON-encoded objects in repeated `queries[]` params.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// Equal matches documents whose attribute equals value.
func Equal(attribute string, value any) Query {
	return Query{Method: "equal", Attribute: attribute, Values: []any{value}}
}

// Search performs the store's full-text search on attribute. The attribute
// must carry a fulltext index; substring matching is the minimum the store
// guarantees.
func Search(attribute, term string) Query {
	return Query{Method: "search", Attribute: attribute, Values: []any{term}}
}

// OrderAsc sorts results ascending by attribute.
func OrderAsc(attribute string) Query {
	return Query{Method: "orderAsc", Attribute: attribute}
}

// OrderDesc sorts results descending by attribute.
func OrderDesc(attribute string) Query {
	return Query{Method: "orderDesc", Attribute: attribute}
}

// Limit caps the number of returned documents.
func Limit(n int) Query {
	return Query{Method: "limit", Values: []any{n}}
}

// Offset skips the first n documents.
func Offset(n int) Query {
	return Query{Method: "offset", Values: []any{n}}
}

// Select restricts returned documents to the named attributes.
func Select(attributes ...string) Query {
	values := make([]any, len(attributes))
	for i, a := range attributes {
		values[i] = a
	}
	return Query{Method: "select", Values: values}
}

func (q Query) encode() string {
	// Queries are marshal-safe by construction; a failure here would be a
	// programming error, so fall back to an empty object instead of panicking.
	b, err := json.Marshal(q)
	if err != nil {
		return "{}"
	}
	return string(b)
}
