package keyboard

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Tokenize splits input using the default tables. See Tables.Tokenize.
func Tokenize(input string) ([]Token, error) {
	return defaultTables.Tokenize(input)
}

// Tokenize splits input into plain text runs, {...} escape sequences and
// special characters, in input order.
//
// Brace balance is checked by comparing the number of { and } characters,
// not by validating nesting. "{a{b}c}" therefore yields the escape "a{b"
// followed by the plain text "c" and the special character "}".
//
// Special characters are only searched for in plain text, never inside an
// escape sequence. Matching is done per grapheme cluster.
func (t *Tables) Tokenize(input string) ([]Token, error) {
	if strings.Count(input, "{") != strings.Count(input, "}") {
		return nil, &ParseError{Input: input, Pos: -1, Err: ErrUnbalancedBraces}
	}

	var tokens []Token
	rest, off := input, 0
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			tokens = t.appendPlain(tokens, rest)
			break
		}
		tokens = t.appendPlain(tokens, rest[:open])

		end := strings.IndexByte(rest[open+1:], '}')
		if end < 0 {
			// Counts match but the last { has no } after it, as in "}{a".
			return nil, &ParseError{Input: input, Pos: off + open, Err: ErrUnbalancedBraces}
		}
		name := rest[open+1 : open+1+end]
		if name == "" {
			return nil, &ParseError{Input: input, Pos: off + open, Err: ErrEmptyEscape}
		}
		tokens = append(tokens, EscapeSequence(name))

		n := open + end + 2
		rest, off = rest[n:], off+n
	}
	return tokens, nil
}

// appendPlain appends s to tokens, split at every special character.
// Empty runs are dropped. A cluster that is not itself special but ends in a
// special rune, such as "\r\n", keeps its prefix as plain text.
func (t *Tables) appendPlain(tokens []Token, s string) []Token {
	if s == "" {
		return tokens
	}

	start, pos := 0, 0
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		special := t.specialSuffix(cluster)
		if special != "" {
			at := pos + len(cluster) - len(special)
			if at > start {
				tokens = append(tokens, PlainText(s[start:at]))
			}
			tokens = append(tokens, SpecialChar(special))
			start = pos + len(cluster)
		}
		pos += len(cluster)
	}
	if start < len(s) {
		tokens = append(tokens, PlainText(s[start:]))
	}
	return tokens
}

// specialSuffix returns cluster if it is a special character, else its last
// rune if that one is, else "".
func (t *Tables) specialSuffix(cluster string) string {
	if _, ok := t.specials[cluster]; ok {
		return cluster
	}
	_, n := utf8.DecodeLastRuneInString(cluster)
	if n == len(cluster) {
		return ""
	}
	last := cluster[len(cluster)-n:]
	if _, ok := t.specials[last]; ok {
		return last
	}
	return ""
}
