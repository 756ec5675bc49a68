package ident

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefix constants for the fixed-shape constructors.
const (
	PrefixCharacter = "char"
	PrefixUser      = "user"
	PrefixStory     = "story"
	PrefixSegment   = "seg"
	PrefixSession   = "sess"
)

// MaxHexLength is the full hexadecimal length of the 128-bit random value
// behind every identifier, and the upper bound Generate accepts.
const MaxHexLength = 32

// Generate produces an identifier of the form {prefix}_{hex}, where hex is
// the leading hexLength characters of a random UUID's 32-character
// hexadecimal form. It returns an error wrapping [ErrInvalidArgument] when
// hexLength is outside [1, MaxHexLength] or prefix is empty or blank.
//
// Format: {prefix}_{N hex chars}  e.g. "char_a1b2c3d4e5f6"
func Generate(prefix string, hexLength int) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("%w: prefix must not be empty", ErrInvalidArgument)
	}
	if hexLength < 1 || hexLength > MaxHexLength {
		return "", fmt.Errorf("%w: hex length %d outside [1, %d]", ErrInvalidArgument, hexLength, MaxHexLength)
	}
	return newID(prefix, hexLength), nil
}

// newID skips argument validation; callers pass known-good arguments.
func newID(prefix string, hexLength int) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:hexLength]
}

// Character returns a new character identifier, e.g. "char_a1b2c3d4e5f6".
func Character() string { return newID(PrefixCharacter, 12) }

// User returns a new user identifier, e.g. "user_a1b2c3d4e5f6a7b8".
func User() string { return newID(PrefixUser, 16) }

// Story returns a new story identifier, e.g. "story_a1b2c3d4e5f6".
func Story() string { return newID(PrefixStory, 12) }

// Segment returns a new segment identifier, e.g. "seg_a1b2c3d4e5".
func Segment() string { return newID(PrefixSegment, 10) }

// Session returns a new session identifier, e.g. "sess_a1b2c3d4e5f6a7b8".
func Session() string { return newID(PrefixSession, 16) }

// UUID returns a new random UUID in its canonical dashed form, for callers
// that need an unprefixed identifier.
func UUID() string { return uuid.NewString() }
