// Package id generates prefixed NanoID identifiers for ColorPal records.
package id

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes for each record kind. The prefix makes an ID self-describing in
// logs and URLs.
const (
	PrefixUser          = "usr"
	PrefixSession       = "sess"
	PrefixColor         = "col"
	PrefixPalette       = "pal"
	PrefixFriendRequest = "freq"
)

// Generate returns prefix-<21 char nanoid>, e.g. "pal-V1StGXR8_Z5jdHi6B-myT".
func Generate(prefix string) (string, error) {
	nid, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + nid, nil
}

// MustGenerate is like Generate but panics when the system has no entropy.
func MustGenerate(prefix string) string {
	s, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return s
}

// HasPrefix reports whether s was generated with prefix.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix+"-") && len(s) > len(prefix)+1
}
