// Package normalize converts heterogeneous backend record shapes into the
// one canonical shape the rest of the pipeline decodes from. All records
// flow through here exactly once, inside a load.
package normalize

import (
	"encoding/json"
	"strconv"
)

// backendIDField is the id field name the backend uses. The original value
// is kept alongside the canonical one so nothing is lost.
const backendIDField = "_id"

// imageAliases are the alternate names image-bearing fields arrive under.
// They all collapse into a single "image" field.
var imageAliases = []string{"imageUrl", "poster", "photo"}

// timestampFields pass through unchanged; the backend already sends ISO
// strings and the views format them at render time.
var timestampFields = map[string]bool{
	"createdAt":  true,
	"uploadedAt": true,
	"postedAt":   true,
	"date":       true,
	"at":         true,
}

// Normalize converts a decoded JSON value into canonical shape. It is total:
// nil and non-container inputs pass through as identity, containers are
// walked recursively, and nested author/reference objects get the same id
// rename as top-level records.
func Normalize(raw any) any {
	switch v := raw.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	case map[string]any:
		return normalizeObject(v)
	default:
		return raw
	}
}

// Into normalizes raw and decodes the canonical shape into dst through a
// JSON round-trip.
func Into(raw any, dst any) error {
	buf, err := json.Marshal(Normalize(raw))
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}

func normalizeObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj)+1)

	for key, value := range obj {
		if timestampFields[key] {
			out[key] = value
			continue
		}
		out[key] = Normalize(value)
	}

	// Rename the backend id to the canonical field, preserving the original.
	if id, ok := out[backendIDField]; ok {
		if _, taken := out["id"]; !taken {
			out["id"] = id
		}
	}

	// Ids are opaque strings everywhere downstream; older backend records
	// carry numeric ids.
	if id, ok := out["id"]; ok {
		if f, isNum := id.(float64); isNum {
			out["id"] = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	// Unify image aliases into a single field. First alias wins when the
	// canonical field is still empty.
	for _, alias := range imageAliases {
		v, ok := out[alias]
		if !ok {
			continue
		}
		if existing, taken := out["image"]; !taken || existing == nil || existing == "" {
			if v != nil && v != "" {
				out["image"] = v
			}
		}
		delete(out, alias)
	}

	return out
}
