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
	"reflect"
	"strings"
	"testing"

	gott "github.com/shadorain/shadovi/types"
)

var allOptions = Options{
	Numbers:         true,
	Strings:         true,
	Characters:      true,
	Comments:        true,
	KeywordsPrimary: []string{"for", "if"},
}

// categories spells expected output compactly: one letter per cluster.
// n=None d=Number s=String c=Character m=Comment k=KeywordPrimary
func categories(pattern string) []gott.Category {
	if pattern == "" {
		return nil
	}
	out := make([]gott.Category, 0, len(pattern))
	for _, c := range pattern {
		switch c {
		case 'd':
			out = append(out, gott.CategoryNumber)
		case 's':
			out = append(out, gott.CategoryString)
		case 'c':
			out = append(out, gott.CategoryCharacter)
		case 'm':
			out = append(out, gott.CategoryComment)
		case 'k':
			out = append(out, gott.CategoryKeywordPrimary)
		default:
			out = append(out, gott.CategoryNone)
		}
	}
	return out
}

func TestHighlightLine(t *testing.T) {
	for _, tt := range []struct {
		name string
		line string
		want string
	}{
		{"empty", "", ""},
		{"plain", "abc", "nnn"},
		{"number run", "1testtest", "dnnnnnnnn"},
		{"digits and dots", "12.5", "dddd"},
		{"number after space", "a 12", "nndd"},
		// the first digit after an identifier is rejected; the digits
		// following it have a digit predecessor and do match
		{"digit inside identifier", "abc123", "nnnndd"},
		{"character literal", "'a'", "ccc"},
		{"escaped character literal", "'\\n'", "cccc"},
		{"unclosed character literal", "'ab", "nnn"},
		{"character literal then text", "'a' x", "cccnn"},
		{"line comment", "x // hi", "nnmmmmm"},
		{"lone slash", "a / b", "nnnnn"},
		{"quoted string", "say \"hi\" now", "nnnnssssnnnn"},
		{"unterminated string", "\"abc", "ssss"},
		{"comment wins over string", "// \"x\"", "mmmmmm"},
		{"string swallows slashes", "\"//\"", "ssss"},
		{"keyword", "for x", "kkknn"},
		{"keyword inside word", "before", "nnkkkn"},
		{"keyword two letter", "if x", "kknn"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := highlightLine(tt.line, allOptions)
			want := categories(tt.want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("highlightLine(%q) = %v, want %v", tt.line, got, want)
			}
		})
	}
}

func TestHighlightLineDisabledOptions(t *testing.T) {
	got := highlightLine("12 \"x\" // y", Options{})
	for i, category := range got {
		if category != gott.CategoryNone {
			t.Errorf("position %d: got %v with all recognizers off", i, category)
		}
	}
}

// the category slice always covers the line exactly
func TestHighlightLineCoverage(t *testing.T) {
	lines := []string{
		"",
		"plain text",
		"\"unterminated",
		"'x",
		"123abc456",
		"// trailing comment",
		"'\\''",
		strings.Repeat("\"", 7),
		"xéy 12",
	}
	for _, line := range lines {
		got := highlightLine(line, allOptions)
		if len(got) != graphemeCount(line) {
			t.Errorf("highlightLine(%q): %d categories for %d clusters", line, len(got), graphemeCount(line))
		}
	}
}
