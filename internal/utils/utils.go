package utils

import (
	"math/rand"
	"strings"
)

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRoomCode returns a random alphanumeric code of length n. Collisions
// are astronomically unlikely at n=6; the registry still retries on a hit.
func GenerateRoomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}

// MaskPhrase renders the display form of a secret phrase. Spaces and revealed
// letters pass through; every other character becomes an underscore. The
// result always has the same length as the input.
func MaskPhrase(phrase string, revealed []string) string {
	if phrase == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(phrase))
	for _, c := range phrase {
		switch {
		case c == ' ':
			b.WriteRune(' ')
		case slicesContainsRune(revealed, c):
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func slicesContainsRune(letters []string, c rune) bool {
	for _, l := range letters {
		if len(l) == 1 && rune(l[0]) == c {
			return true
		}
	}
	return false
}

// NormalizeLetter uppercases and trims a guess and reports whether it is a
// single A-Z letter.
func NormalizeLetter(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return "", false
	}
	return s, true
}
