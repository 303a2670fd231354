package model

import (
	"strings"
)

const Wildcard = "*"

// NameKey is a dot-separated identifier ("category", "category.set" or "category.set.power")
// compared without regard to ASCII case. Other characters compare exactly.
type NameKey struct {
	name   string
	folded string
}

func NewNameKey(name string) NameKey {
	return NameKey{
		name:   name,
		folded: fold(name),
	}
}

// NewNameKeyFromParts joins already split segments back together.
func NewNameKeyFromParts(parts ...string) NameKey {
	return NewNameKey(strings.Join(parts, "."))
}

func (k NameKey) String() string {
	return k.name
}

// Key is the folded form used for hashing and equality.
func (k NameKey) Key() string {
	return k.folded
}

func (k NameKey) IsZero() bool {
	return k.name == ""
}

func (k NameKey) Equal(other NameKey) bool {
	return k.folded == other.folded
}

// IsWildcard reports whether the last segment of the key is "*".
func (k NameKey) IsWildcard() bool {
	parts := k.Split()
	return parts[len(parts)-1] == Wildcard
}

// PartialMatch is a case-insensitive substring test.
func (k NameKey) PartialMatch(fragment string) bool {
	return strings.Contains(k.folded, fold(fragment))
}

func (k NameKey) Split() []string {
	return strings.Split(k.name, ".")
}

// Parent drops the last segment, "a.b.c" becomes "a.b".
func (k NameKey) Parent() NameKey {
	idx := strings.LastIndex(k.name, ".")
	if idx < 0 {
		return NameKey{}
	}
	return NewNameKey(k.name[:idx])
}

func (k NameKey) MarshalText() ([]byte, error) {
	return []byte(k.name), nil
}

func (k *NameKey) UnmarshalText(text []byte) error {
	*k = NewNameKey(string(text))
	return nil
}

func fold(s string) string {
	folded := []byte(s)
	for i, c := range folded {
		if 'A' <= c && c <= 'Z' {
			folded[i] = c + 'a' - 'A'
		}
	}
	return string(folded)
}
