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
	"strings"

	gott "github.com/shadorain/shadovi/types"
)

// A Row is one line of text in a document. All indexing is in grapheme
// clusters, never bytes. The highlighting slice, when current, holds
// exactly one category per cluster.
type Row struct {
	text         string
	length       int
	highlighting []gott.Category
	stale        bool
}

func NewRow(text string) *Row {
	return &Row{
		text:   text,
		length: graphemeCount(text),
		stale:  true,
	}
}

func (r *Row) String() string {
	return r.text
}

func (r *Row) Bytes() []byte {
	return []byte(r.text)
}

func (r *Row) Len() int {
	return r.length
}

func (r *Row) IsEmpty() bool {
	return r.length == 0
}

// InsertChar splices c in before the cluster at position at. An
// out-of-range position appends.
func (r *Row) InsertChar(at int, c rune) {
	defer r.invalidate()
	if at >= r.length {
		r.text += string(c)
		r.length = graphemeCount(r.text)
		return
	}
	var result strings.Builder
	for i, cluster := range graphemes(r.text) {
		if i == at {
			result.WriteRune(c)
		}
		result.WriteString(cluster)
	}
	r.text = result.String()
	// an inserted combining character can merge with a neighboring cluster
	r.length = graphemeCount(r.text)
}

// DeleteChar removes the cluster at position at. Out of range is a no-op.
func (r *Row) DeleteChar(at int) {
	if at >= r.length {
		return
	}
	defer r.invalidate()
	var result strings.Builder
	for i, cluster := range graphemes(r.text) {
		if i != at {
			result.WriteString(cluster)
		}
	}
	r.text = result.String()
	r.length = graphemeCount(r.text)
}

// Append concatenates other onto the receiver. The caller is expected to
// discard other; joining lines on a forward delete at end of line does.
func (r *Row) Append(other *Row) {
	r.text += other.text
	r.length = graphemeCount(r.text)
	r.invalidate()
}

// Split keeps clusters [0, at) in the receiver and returns a new Row
// holding clusters [at, length).
func (r *Row) Split(at int) *Row {
	var kept, moved strings.Builder
	keptLength, movedLength := 0, 0
	for i, cluster := range graphemes(r.text) {
		if i < at {
			keptLength++
			kept.WriteString(cluster)
		} else {
			movedLength++
			moved.WriteString(cluster)
		}
	}
	r.text = kept.String()
	r.length = keptLength
	r.invalidate()
	return &Row{
		text:   moved.String(),
		length: movedLength,
		stale:  true,
	}
}

// Find locates query within this row and reports its grapheme index.
// Forward returns the first match at or after at; Backward returns the
// last match strictly before at.
func (r *Row) Find(query string, at int, direction gott.Direction) (int, bool) {
	if at > r.length || query == "" {
		return 0, false
	}
	var start, end int
	if direction == gott.Forward {
		start, end = at, r.length
	} else {
		start, end = 0, at
	}
	clusters := graphemes(r.text)
	substring := strings.Join(clusters[start:end], "")
	var matchingByteIndex int
	if direction == gott.Forward {
		matchingByteIndex = strings.Index(substring, query)
	} else {
		matchingByteIndex = strings.LastIndex(substring, query)
	}
	if matchingByteIndex < 0 {
		return 0, false
	}
	byteIndex := 0
	for graphemeIndex := start; graphemeIndex < end; graphemeIndex++ {
		if byteIndex == matchingByteIndex {
			return graphemeIndex, true
		}
		byteIndex += len(clusters[graphemeIndex])
	}
	return 0, false
}

// HighlightMatch overlays the Match category on every non-overlapping
// occurrence of word, scanning left to right and resuming after each match.
func (r *Row) HighlightMatch(word string) {
	if word == "" {
		return
	}
	wordLength := graphemeCount(word)
	index := 0
	for {
		match, ok := r.Find(word, index, gott.Forward)
		if !ok {
			break
		}
		next := match + wordLength
		for i := match; i < next && i < len(r.highlighting); i++ {
			r.highlighting[i] = gott.CategoryMatch
		}
		index = next
	}
}

// Highlight rebuilds the per-cluster category slice for this row and
// overlays the active search word, if any.
func (r *Row) Highlight(opts Options, word string) {
	r.highlighting = highlightLine(r.text, opts)
	r.HighlightMatch(word)
	r.stale = false
}

// Render clips the row to the cluster range [start, min(end, length)) and
// returns it as style runs: one fragment per run of equal category, tabs
// expanded to two spaces. The display layer resets to the default style
// after the final fragment.
func (r *Row) Render(start, end int) []gott.Fragment {
	if end > r.length {
		end = r.length
	}
	if start > end {
		start = end
	}
	var fragments []gott.Fragment
	var run strings.Builder
	current := gott.CategoryNone
	clusters := graphemes(r.text)
	for i := start; i < end; i++ {
		category := gott.CategoryNone
		if i < len(r.highlighting) {
			category = r.highlighting[i]
		}
		if category != current && run.Len() > 0 {
			fragments = append(fragments, gott.Fragment{Text: run.String(), Category: current})
			run.Reset()
		}
		current = category
		if clusters[i] == "\t" {
			run.WriteString("  ")
		} else {
			run.WriteString(clusters[i])
		}
	}
	if run.Len() > 0 {
		fragments = append(fragments, gott.Fragment{Text: run.String(), Category: current})
	}
	return fragments
}

func (r *Row) invalidate() {
	r.stale = true
}
