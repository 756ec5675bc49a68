package ident

import (
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
)

// Sortable produces an identifier of the form {prefix}_{ksuid}. KSUIDs embed
// a timestamp, so identifiers from the same prefix sort lexicographically in
// roughly chronological order. It returns an error wrapping
// [ErrInvalidArgument] when prefix is empty or blank.
//
// Format: {prefix}_{27-char KSUID}  e.g. "story_2NfAbc1Xyz0QWERTYuiopASDFGh"
func Sortable(prefix string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("%w: prefix must not be empty", ErrInvalidArgument)
	}
	return prefix + "_" + ksuid.New().String(), nil
}
