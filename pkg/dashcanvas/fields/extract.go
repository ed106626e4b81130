// Package fields derives addressable field paths from nested sample records.
package fields

import (
	"sort"
	"strings"

	"github.com/ukaji3/dashcanvas-go/pkg/dashcanvas/models"
)

// Separator joins nested keys into a field path.
// Keys that already contain it are not escaped.
const Separator = "."

// Leaf is a flattened field path and the value found there.
type Leaf struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Flatten walks rec depth-first and returns every leaf in key order.
// Records and map[string]any values are descended into; arrays, nil and
// scalars are leaves. An empty nested record yields no leaf.
func Flatten(rec models.Record) []Leaf {
	leaves := []Leaf{}
	walk(rec, "", &leaves)
	return leaves
}

func walk(rec models.Record, prefix string, leaves *[]Leaf) {
	for _, e := range rec {
		path := join(prefix, e.Key)
		if nested, ok := asRecord(e.Value); ok {
			walk(nested, path, leaves)
			continue
		}
		*leaves = append(*leaves, Leaf{Path: path, Value: e.Value})
	}
}

// asRecord reports whether v is a nested key-value mapping.
func asRecord(v any) (models.Record, bool) {
	switch t := v.(type) {
	case models.Record:
		return t, t != nil
	case map[string]any:
		if t == nil {
			return nil, false
		}
		return models.RecordFromMap(t), true
	}
	return nil, false
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

// Paths returns the field paths of the first record in ds.
// An empty dataset yields an empty list.
func Paths(ds models.Dataset) []string {
	first, ok := ds.First()
	if !ok {
		return []string{}
	}
	leaves := Flatten(first)
	paths := make([]string, len(leaves))
	for i, l := range leaves {
		paths[i] = l.Path
	}
	return paths
}

// Lookup resolves a dotted field path in rec.
// Because keys are not escaped, a literal key containing the separator is
// tried before descending.
func Lookup(rec models.Record, path string) (any, bool) {
	if v, ok := rec.Get(path); ok {
		return v, true
	}

	head, rest, found := strings.Cut(path, Separator)
	for found {
		if v, ok := rec.Get(head); ok {
			if nested, ok := asRecord(v); ok {
				if val, ok := Lookup(nested, rest); ok {
					return val, true
				}
			}
		}
		var next string
		next, rest, found = strings.Cut(rest, Separator)
		head = head + Separator + next
	}
	return nil, false
}

// Contains reports whether path is one of the field paths of ds.
func Contains(ds models.Dataset, path string) bool {
	for _, p := range Paths(ds) {
		if p == path {
			return true
		}
	}
	return false
}

// SortedPaths returns Paths(ds) in lexical order, for stable listings.
func SortedPaths(ds models.Dataset) []string {
	paths := Paths(ds)
	sort.Strings(paths)
	return paths
}
