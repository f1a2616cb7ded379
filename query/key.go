package query

import (
	"sort"
	"strings"
)

// Key identifies one cacheable read operation and its parameters.
// Two keys are equal iff their name and all parameters match; parameter
// order never matters. The zero Key is invalid.
type Key struct {
	name  string
	canon string
}

// NewKey builds a Key from a query name and optional parameters.
// Parameters are normalized into a canonical form so that
// NewKey("diary", P("sort", "desc"), P("limit", "8")) and
// NewKey("diary", P("limit", "8"), P("sort", "desc")) identify the same slot.
func NewKey(name string, params ...Param) Key {
	if len(params) == 0 {
		return Key{name: name, canon: name}
	}
	kv := make([]string, len(params))
	for i, p := range params {
		kv[i] = p.Name + "=" + p.Value
	}
	sort.Strings(kv)
	return Key{name: name, canon: name + "?" + strings.Join(kv, "&")}
}

// Param is a single named query parameter.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for constructing a Param.
func P(name, value string) Param { return Param{Name: name, Value: value} }

// Name returns the query name component of the key.
func (k Key) Name() string { return k.name }

// String returns the canonical form, e.g. "diary?limit=8&sort=desc".
func (k Key) String() string { return k.canon }

// IsZero reports whether the key is the invalid zero value.
func (k Key) IsZero() bool { return k.canon == "" }

// MatchesName reports whether the key belongs to the given query name.
// Used for prefix invalidation: invalidating "diary" hits every diary key
// regardless of sort order or page size.
func (k Key) MatchesName(name string) bool { return k.name == name }
