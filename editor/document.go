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
	"io"
	"strings"

	gott "github.com/shadorain/shadovi/types"
)

// A Document is an ordered sequence of Rows being edited. The dirty flag
// is true whenever the in-memory content differs from the last load or
// successful save. The active search word is document state so rows can
// rebuild their highlighting lazily when they are next rendered.
type Document struct {
	rows       []*Row
	fileName   string
	fileType   FileType
	dirty      bool
	searchWord string
}

func NewDocument() *Document {
	return &Document{fileType: FileTypeFrom("")}
}

// Load replaces the document content with bytes split on line terminators.
func (d *Document) Load(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(line))
	}
	d.dirty = false
}

// Bytes returns the document content as it is written to storage.
func (d *Document) Bytes() []byte {
	var b strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.String())
	}
	return []byte(b.String())
}

// WriteTo writes the document to w and clears the dirty flag on success.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	if err != nil {
		return int64(n), err
	}
	d.dirty = false
	return int64(n), nil
}

func (d *Document) SetFileName(name string) {
	d.fileName = name
	d.fileType = FileTypeFrom(name)
	d.invalidateAll()
}

func (d *Document) GetFileName() string {
	return d.fileName
}

func (d *Document) GetFileTypeName() string {
	return d.fileType.Name
}

func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

func (d *Document) GetRowCount() int {
	return len(d.rows)
}

func (d *Document) GetRowLength(index int) int {
	if index < len(d.rows) {
		return d.rows[index].Len()
	}
	return 0
}

func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

func (d *Document) IsDirty() bool {
	return d.dirty
}

// Insert places c at position at. A line break splits the line at the
// cursor column and inserts the remainder as a new row immediately below;
// at.Row == row count appends a fresh row.
func (d *Document) Insert(at gott.Point, c rune) {
	if at.Row > len(d.rows) {
		return
	}
	d.dirty = true
	if c == '\n' {
		d.insertNewline(at)
		return
	}
	if at.Row == len(d.rows) {
		d.rows = append(d.rows, NewRow(string(c)))
		return
	}
	d.rows[at.Row].InsertChar(at.Col, c)
}

func (d *Document) insertNewline(at gott.Point) {
	if at.Row == len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
		return
	}
	newRow := d.rows[at.Row].Split(at.Col)
	d.rows = append(d.rows, nil)
	copy(d.rows[at.Row+2:], d.rows[at.Row+1:])
	d.rows[at.Row+1] = newRow
}

// Delete removes the cluster at position at. At the end of a line the next
// row is joined onto the current one; at the very end of the document this
// is a no-op.
func (d *Document) Delete(at gott.Point) {
	if at.Row >= len(d.rows) {
		return
	}
	d.dirty = true
	row := d.rows[at.Row]
	if at.Col == row.Len() && at.Row+1 < len(d.rows) {
		next := d.rows[at.Row+1]
		d.rows = append(d.rows[:at.Row+1], d.rows[at.Row+2:]...)
		row.Append(next)
		return
	}
	row.DeleteChar(at.Col)
}

// Find scans for query starting at from in the given direction. The
// starting row respects the column offset; rows after it are searched in
// full. The scan does not wrap at either document boundary.
func (d *Document) Find(query string, from gott.Point, direction gott.Direction) (gott.Point, bool) {
	if from.Row >= len(d.rows) {
		return gott.Point{}, false
	}
	position := from
	var start, end int
	if direction == gott.Forward {
		start, end = from.Row, len(d.rows)
	} else {
		start, end = 0, from.Row+1
	}
	for i := start; i < end; i++ {
		if position.Row >= len(d.rows) {
			break
		}
		row := d.rows[position.Row]
		if col, ok := row.Find(query, position.Col, direction); ok {
			position.Col = col
			return position, true
		}
		if direction == gott.Forward {
			position.Row++
			position.Col = 0
		} else {
			position.Row--
			if position.Row < 0 {
				break
			}
			position.Col = d.rows[position.Row].Len()
		}
	}
	return gott.Point{}, false
}

// SetSearchWord records the word to overlay as CategoryMatch. Changing it
// schedules every row for rehighlighting.
func (d *Document) SetSearchWord(word string) {
	if word == d.searchWord {
		return
	}
	d.searchWord = word
	d.invalidateAll()
}

// RenderRow rehighlights the row if its categories are stale and returns
// the style runs for the cluster range [start, end). The second result is
// false past the end of the document.
func (d *Document) RenderRow(index, start, end int) ([]gott.Fragment, bool) {
	row := d.Row(index)
	if row == nil {
		return nil, false
	}
	if row.stale {
		row.Highlight(d.fileType.Options, d.searchWord)
	}
	return row.Render(start, end), true
}

func (d *Document) invalidateAll() {
	for _, row := range d.rows {
		row.invalidate()
	}
}
