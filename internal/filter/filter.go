// Package filter screens chat messages and player names for profanity.
//
// The word list and substitution tables are the Finnish/English ones the
// original game shipped with. Matching is forgiving: repeated letters and
// anything that is not a lowercase letter are skipped, so "huoraa" and
// "h u o r a" both hit.
package filter

import (
	"strings"
	"unicode"
)

var badWords = []string{
	"kikkeli",
	"tussu",
	"tissi",
	"pimppa",
	"lutka",
	"persreikä",
	"kusipää",
	"nussi",
	"pimppi",
	"pippeli",
	"paska",
	"vitut",
	"vitun",
	"vittu",
	"saatana",
	"pillu",
	"perse",
	"perkele",
	"mulkku",
	"kulli",
	"huora",
	"helvetti",
	"helvetin",
	"kyrpä",
	"runkku",
	"runkkaa",
	"runkkari",
	"hintti",
	"fuck",
}

// Exact substrings exempt from matching, so "hell" does not trip helvetti.
var allowedWords = []string{"He'll", "he'll", "hell"}

const nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖÜÁÉÍÓÚÑabcdefghijklmnopqrstuvwxyzåäöüáéíóúñ0123456789- "

// Digit/symbol/diacritic lookalikes, index-aligned pairs.
// TODO: Finnish clients additionally fold bdgw to ptkv.
const (
	leetFrom = "0123456789 l |¦!¡( @¤× ª°º¹²³ ©® ¥ßµ¢ àáâãåçèéêëìíîïñòóôõøùúûüýÿæ"
	leetTo   = "oizeasgtbp i iiiic aox aooize cr ybuc aaaäoceeeeiiiinooooouuuuyye"

	punctFrom = "¦!¡ []{}() ~ ª°º¹²³* `´\""
	punctTo   = "||| |||||| - ''''''' '''"
)

// Filter normalizes a message for word matching: lowercased, lookalike
// characters folded to the letters they imitate. Whitespace is kept.
func Filter(s string) string {
	s = strings.ToLower(s)
	s = replaceChars(s, leetFrom, leetTo)
	s = replaceChars(s, punctFrom, punctTo)
	return s
}

// ContainsBadWords reports whether the input matches any listed word.
// Input should already be normalized with Filter; matching only considers
// lowercase letters (plus ä and ö).
func ContainsBadWords(s string) bool {
	input := []rune(s)
	marks := markAllowed(input)
	for _, word := range badWords {
		w := []rune(word)
		for start := range input {
			markWord(input, start, marks, w)
		}
	}
	for _, m := range marks {
		if m == -1 {
			return true
		}
	}
	return false
}

// NameFilter reduces a requested nickname to the accepted alphabet.
// Rejected characters become '-', then dashes and whitespace are trimmed
// off both ends. The result may be empty.
func NameFilter(s string) string {
	mapped := strings.Map(func(c rune) rune {
		if strings.ContainsRune(nameAlphabet, c) {
			return c
		}
		return '-'
	}, s)
	return strings.TrimSpace(strings.Trim(mapped, "-"))
}

func replaceChars(s, from, to string) string {
	f := []rune(from)
	r := []rune(to)
	out := []rune(s)
	for i, c := range out {
		if unicode.IsSpace(c) {
			continue
		}
		for j, fc := range f {
			if fc == c {
				if j < len(r) {
					out[i] = r[j]
				}
				break
			}
		}
	}
	return string(out)
}

// markAllowed flags every occurrence of an exempt substring with 1.
func markAllowed(input []rune) []int {
	marks := make([]int, len(input))
	for _, allowed := range allowedWords {
		w := []rune(allowed)
		for i := 0; i+len(w) <= len(input); {
			if string(input[i:i+len(w)]) == string(w) {
				fill(marks, i, i+len(w), 1)
				i += len(w)
			} else {
				i++
			}
		}
	}
	return marks
}

// markWord flags input[start:...] with -1 when word matches there.
// The scan consumes repeated letters and steps over characters nextLetter
// skips, so padding and stretching do not hide a word.
func markWord(input []rune, start int, marks []int, word []rune) {
	ci := nextLetter(input, start, marks)
	if ci != start {
		return
	}

	t := 1
	prev := ci
	tmp := word[0]
	first := true

	for ci < len(input) {
		cur := input[ci]
		if cur == tmp && t < len(word) && word[t] == tmp {
			t++
		}
		if cur != tmp {
			if first {
				return
			}
			if t == len(word) {
				fill(marks, start, prev, -1)
				return
			}
			tmp = word[t]
			if cur != tmp {
				return
			}
			t++
		}
		first = false

		ci++
		if ci == len(input) {
			if t != len(word) {
				return
			}
			fill(marks, start, ci, -1)
			return
		}
		prev = ci
		ni := nextLetter(input, ci, marks)
		if ni < 0 {
			if t != len(word) {
				return
			}
			fill(marks, start, ci, -1)
			return
		}
		ci = ni
	}
}

// nextLetter returns the first index at or after start holding an unmarked
// lowercase letter (ascii, ä or ö), or -1.
func nextLetter(input []rune, start int, marks []int) int {
	for i := start; i < len(input); i++ {
		c := input[i]
		if (c >= 'a' && c <= 'z' || c == 'ä' || c == 'ö') && marks[i] == 0 {
			return i
		}
	}
	return -1
}

func fill(marks []int, from, to, v int) {
	for i := from; i < to; i++ {
		marks[i] = v
	}
}
