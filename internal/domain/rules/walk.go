package rules

import (
	"fmt"
	"sort"

	"github.com/confguard/confguard/internal/domain"
)

// visitEntries calls fn for every mapping entry in the document, depth-first,
// with the dotted path of the entry. Keys are visited in sorted order so that
// a rule's warnings are stable across runs.
func visitEntries(doc domain.Value, fn func(path, key string, v domain.Value)) {
	visit("", doc, fn)
}

func visit(prefix string, v domain.Value, fn func(path, key string, v domain.Value)) {
	switch v.Kind() {
	case domain.KindMapping:
		keys := v.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			child, _ := v.Get(key)
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			fn(path, key, child)
			visit(path, child, fn)
		}
	case domain.KindSequence:
		for i, child := range v.Sequence() {
			path := fmt.Sprintf("%s[%d]", prefix, i)
			visit(path, child, fn)
		}
	}
}
