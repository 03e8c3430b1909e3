package model

import "encoding/json"

// Record is implemented by every stored record type.
type Record interface {
	RecordID() string
}

// FindByID returns the index of the record with the given id, or -1.
func FindByID[T Record](items []T, id string) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

// RemoveByID removes the first record with the given id. The second return
// value reports whether anything was removed; a miss is not an error.
func RemoveByID[T Record](items []T, id string) ([]T, bool) {
	for i, item := range items {
		if item.RecordID() == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}

// MergePatch shallow-merges the given JSON fields into record: fields present
// in patch overwrite, everything else keeps its stored value. The record is
// round-tripped through its JSON form so the merge follows wire-level field
// names, and the result is decoded into a fresh value so no slice storage is
// shared with snapshots taken earlier.
func MergePatch[T any](record *T, patch map[string]any) error {
	base, err := json.Marshal(record)
	if err != nil {
		return err
	}
	merged := map[string]any{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}
	for k, v := range patch {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	var next T
	if err := json.Unmarshal(out, &next); err != nil {
		return err
	}
	*record = next
	return nil
}
