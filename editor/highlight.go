//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	gott "github.com/shadorain/shadovi/types"
)

// Options selects which token classes the highlighter recognizes.
type Options struct {
	Numbers         bool
	Strings         bool
	Characters      bool
	Comments        bool
	KeywordsPrimary []string
}

// A scanner walks a line's grapheme clusters left to right, trying
// recognizers in priority order at each position. Each winning recognizer
// emits one category per cluster it consumes; an unclaimed cluster gets
// CategoryNone.
type scanner struct {
	clusters []string
	opts     Options
	out      []gott.Category
	idx      int
}

// highlightLine assigns one highlight category to every grapheme cluster
// of text.
func highlightLine(text string, opts Options) []gott.Category {
	s := &scanner{clusters: graphemes(text), opts: opts}
	for s.idx < len(s.clusters) {
		if s.characterLiteral() ||
			s.lineComment() ||
			s.quotedString() ||
			s.number() ||
			s.primaryKeyword() {
			continue
		}
		s.emit(gott.CategoryNone)
	}
	return s.out
}

func (s *scanner) emit(category gott.Category) {
	s.out = append(s.out, category)
	s.idx++
}

// first returns the first rune of the cluster at i, or 0 past the end.
func (s *scanner) first(i int) rune {
	if i < 0 || i >= len(s.clusters) {
		return 0
	}
	for _, r := range s.clusters[i] {
		return r
	}
	return 0
}

// A ' followed by a one-cluster body (or a two-cluster escaped body) and a
// closing ' is a character literal, quotes included. Anything else falls
// through to the remaining recognizers.
func (s *scanner) characterLiteral() bool {
	if !s.opts.Characters || s.first(s.idx) != '\'' {
		return false
	}
	if s.idx+1 >= len(s.clusters) {
		return false
	}
	closing := s.idx + 2
	if s.first(s.idx+1) == '\\' {
		closing = s.idx + 3
	}
	if closing >= len(s.clusters) || s.first(closing) != '\'' {
		return false
	}
	for s.idx <= closing {
		s.emit(gott.CategoryCharacter)
	}
	return true
}

// // followed by at least one more cluster comments out the rest of the line.
func (s *scanner) lineComment() bool {
	if !s.opts.Comments || s.first(s.idx) != '/' {
		return false
	}
	if s.first(s.idx+1) != '/' {
		return false
	}
	for s.idx < len(s.clusters) {
		s.emit(gott.CategoryComment)
	}
	return true
}

// A " opens a string run that consumes through the next " or, when
// unterminated, through the end of the line.
func (s *scanner) quotedString() bool {
	if !s.opts.Strings || s.first(s.idx) != '"' {
		return false
	}
	s.emit(gott.CategoryString)
	for s.idx < len(s.clusters) {
		closing := s.first(s.idx) == '"'
		s.emit(gott.CategoryString)
		if closing {
			break
		}
	}
	return true
}

// An ASCII digit preceded only by another digit or whitespace starts a
// number; the run consumes contiguous digits and dots. A digit embedded in
// an identifier does not match.
func (s *scanner) number() bool {
	if !s.opts.Numbers || !isASCIIDigit(s.first(s.idx)) {
		return false
	}
	if s.idx > 0 {
		prev := s.first(s.idx - 1)
		if !isASCIIDigit(prev) && !isASCIIWhitespace(prev) {
			return false
		}
	}
	for {
		s.emit(gott.CategoryNumber)
		if s.idx >= len(s.clusters) {
			break
		}
		c := s.first(s.idx)
		if c != '.' && !isASCIIDigit(c) {
			break
		}
	}
	return true
}

// primaryKeyword matches any configured keyword literally at the current
// position, case-sensitive.
func (s *scanner) primaryKeyword() bool {
	for _, word := range s.opts.KeywordsPrimary {
		if s.matchWord(word) {
			return true
		}
	}
	return false
}

func (s *scanner) matchWord(word string) bool {
	if word == "" {
		return false
	}
	clusters := graphemes(word)
	for i, cluster := range clusters {
		if s.idx+i >= len(s.clusters) || s.clusters[s.idx+i] != cluster {
			return false
		}
	}
	for range clusters {
		s.emit(gott.CategoryKeywordPrimary)
	}
	return true
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isASCIIWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
