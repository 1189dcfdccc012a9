// Package recode turns text and other alphabets into etc.Sequence values.
//
// Every recoder maps to symbols starting at 1, as etc requires.
package recode

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/axiomhq/etc"
)

// ErrSymbol indicates a character the chosen alphabet does not cover.
var ErrSymbol = errors.New("recode: symbol outside alphabet")

// Lexical numbers the distinct runes of text in sorted order, 1..k.
func Lexical(text string) (etc.Sequence, error) {
	runes := []rune(text)
	return encode(runes, alphabetOf(runes))
}

// Alphabetical maps a–z (case-insensitive) to 1..26. Whitespace is
// skipped; any other rune is an error.
func Alphabetical(text string) (etc.Sequence, error) {
	out := make([]uint32, 0, len(text))
	for i, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToLower(r)
		if r < 'a' || r > 'z' {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrSymbol, r, i)
		}
		out = append(out, uint32(r-'a'+1))
	}
	return etc.Cast(out)
}

// DNA maps nucleotides to two classes: purines (A, G) become 1 and
// pyrimidines (C, T) become 2. Whitespace is skipped.
func DNA(text string) (etc.Sequence, error) {
	out := make([]uint32, 0, len(text))
	for i, r := range text {
		switch unicode.ToUpper(r) {
		case 'A', 'G':
			out = append(out, 1)
		case 'C', 'T':
			out = append(out, 2)
		default:
			if unicode.IsSpace(r) {
				continue
			}
			return nil, fmt.Errorf("%w: %q at byte %d", ErrSymbol, r, i)
		}
	}
	return etc.Cast(out)
}

// Fields parses integers separated by whitespace or commas.
func Fields(text string) (etc.Sequence, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("recode: field %d: %w", i, err)
		}
		out[i] = v
	}
	return etc.Cast(out)
}

// Shuffled numbers the distinct runes of text in an order drawn from rng,
// 1..k. It is a control for Lexical: ETC depends only on which positions
// hold equal symbols, so both must give the same effort.
func Shuffled(text string, rng *rand.Rand) (etc.Sequence, error) {
	runes := []rune(text)
	alphabet := alphabetOf(runes)
	rng.Shuffle(len(alphabet), func(i, j int) {
		alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
	})
	return encode(runes, alphabet)
}

// MaxLabel bounds the labels drawn by RandomLabels.
const MaxLabel = 1<<20 - 1

// RandomLabels gives each distinct rune of text its own label drawn
// uniformly from 1..MaxLabel. Like Shuffled it only changes symbol names,
// so the effort is that of Lexical.
func RandomLabels(text string, rng *rand.Rand) (etc.Sequence, error) {
	runes := []rune(text)
	alphabet := alphabetOf(runes)
	if len(alphabet) > MaxLabel {
		return nil, fmt.Errorf("%w: %d distinct runes", ErrSymbol, len(alphabet))
	}
	code := make(map[rune]uint32, len(alphabet))
	used := make(map[uint32]bool, len(alphabet))
	for _, r := range alphabet {
		v := 1 + rng.Uint32N(MaxLabel)
		for used[v] {
			v = 1 + rng.Uint32N(MaxLabel)
		}
		used[v] = true
		code[r] = v
	}
	out := make([]uint32, len(runes))
	for i, r := range runes {
		out[i] = code[r]
	}
	return etc.Cast(out)
}

// ByName returns the recoder registered under name: "lexical",
// "alphabetical", "dna" or "fields".
func ByName(name string) (func(string) (etc.Sequence, error), error) {
	switch name {
	case "lexical", "":
		return Lexical, nil
	case "alphabetical":
		return Alphabetical, nil
	case "dna":
		return DNA, nil
	case "fields":
		return Fields, nil
	}
	return nil, fmt.Errorf("recode: unknown recoder %q", name)
}

// alphabetOf returns the distinct runes in sorted order.
func alphabetOf(runes []rune) []rune {
	alphabet := slices.Clone(runes)
	slices.Sort(alphabet)
	return slices.Compact(alphabet)
}

// encode replaces each rune by 1 + its position in alphabet.
func encode(runes, alphabet []rune) (etc.Sequence, error) {
	code := make(map[rune]uint32, len(alphabet))
	for i, r := range alphabet {
		code[r] = uint32(i + 1)
	}
	out := make([]uint32, len(runes))
	for i, r := range runes {
		out[i] = code[r]
	}
	return etc.Cast(out)
}
