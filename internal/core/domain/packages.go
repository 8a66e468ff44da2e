package domain

import "strings"

const (
	// DraftPlaceholder is the reserved package name of a row under active edit.
	// It never appears in a persisted or saved package map.
	DraftPlaceholder = ""

	// AnyVersion is the wildcard version specifier.
	AnyVersion = "*"
)

// PackageMap maps a package name to its version specifier (e.g. "1.0" or "*").
// Package names are compared case-insensitively.
type PackageMap map[string]string

// NormalizeName returns the canonical (lower-cased) form of a package name.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// Clone returns a copy of the map. A nil map clones to an empty map.
func (m PackageMap) Clone() PackageMap {
	out := make(PackageMap, len(m))
	for name, version := range m {
		out[name] = version
	}
	return out
}

// Equal reports whether both maps hold the same keys with the same values.
func (m PackageMap) Equal(other PackageMap) bool {
	if len(m) != len(other) {
		return false
	}
	for name, version := range m {
		v, ok := other[name]
		if !ok || v != version {
			return false
		}
	}
	return true
}

// HasPlaceholder reports whether the map holds a draft row.
func (m PackageMap) HasPlaceholder() bool {
	_, ok := m[DraftPlaceholder]
	return ok
}

// WithoutPlaceholder returns a copy of the map without the draft row.
func (m PackageMap) WithoutPlaceholder() PackageMap {
	out := m.Clone()
	delete(out, DraftPlaceholder)
	return out
}

// Lookup returns the key under which name is stored, ignoring case. An exact
// match is preferred.
func (m PackageMap) Lookup(name string) (string, bool) {
	if name == DraftPlaceholder {
		return "", false
	}
	if _, ok := m[name]; ok {
		return name, true
	}
	canonical := NormalizeName(name)
	for key := range m {
		if key != DraftPlaceholder && NormalizeName(key) == canonical {
			return key, true
		}
	}
	return "", false
}

// Normalized returns a copy of the map keyed by canonical package names.
func (m PackageMap) Normalized() PackageMap {
	out := make(PackageMap, len(m))
	for name, version := range m {
		out[NormalizeName(name)] = version
	}
	return out
}

// AddDraftRow inserts an empty draft row.
// An existing draft row is overwritten, so at most one can exist.
func AddDraftRow(draft PackageMap) PackageMap {
	out := draft.Clone()
	out[DraftPlaceholder] = ""
	return out
}

// BeginEditDraft removes name from the draft and opens a draft row with the
// wildcard version in its place.
func BeginEditDraft(draft PackageMap, name string) PackageMap {
	out := draft.Clone()
	delete(out, name)
	out[DraftPlaceholder] = AnyVersion
	return out
}

// BeginEditSaved moves a saved package into the draft so it can be edited.
func BeginEditSaved(saved, draft PackageMap, name, version string) (PackageMap, PackageMap) {
	newSaved := saved.Clone()
	delete(newSaved, name)

	newDraft := draft.Clone()
	newDraft[name] = version
	return newSaved, newDraft
}

// CommitDraftRow stores name/version and closes the draft row.
// Entries with an empty name are never retained.
func CommitDraftRow(draft PackageMap, name, version string) PackageMap {
	out := draft.Clone()
	out[name] = version
	delete(out, DraftPlaceholder)
	return out
}

// DiscardDraftRow removes name from the draft. Absent names are ignored.
func DiscardDraftRow(draft PackageMap, name string) PackageMap {
	out := draft.Clone()
	delete(out, name)
	return out
}

// DiscardSavedRow removes name from the saved set. Absent names are ignored.
func DiscardSavedRow(saved PackageMap, name string) PackageMap {
	out := saved.Clone()
	delete(out, name)
	return out
}

// MergeForSave unions the saved and draft sets, draft values winning on
// conflict. A draft entry replaces a saved entry whose name differs only in
// case. The draft placeholder never reaches the result.
func MergeForSave(saved, draft PackageMap) PackageMap {
	drafted := make(map[string]struct{}, len(draft))
	for name := range draft {
		drafted[NormalizeName(name)] = struct{}{}
	}

	out := make(PackageMap, len(saved)+len(draft))
	for name, version := range saved {
		if name == DraftPlaceholder {
			continue
		}
		if _, ok := drafted[NormalizeName(name)]; ok {
			continue
		}
		out[name] = version
	}
	for name, version := range draft {
		if name == DraftPlaceholder {
			continue
		}
		out[name] = version
	}
	return out
}
