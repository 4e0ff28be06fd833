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
	"fmt"
	"os"

	gott "github.com/shadorain/shadovi/types"
)

// The Editor manages the cursor, the scroll offset, and the edits applied
// to a Document.
type Editor struct {
	cursor          gott.Point
	offset          gott.Point
	size            gott.Size
	document        *Document
	searchAnchor    gott.Point
	searchDirection gott.Direction
}

func NewEditor() *Editor {
	return &Editor{document: NewDocument()}
}

func (e *Editor) GetCursor() gott.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.cursor = cursor
}

func (e *Editor) SetSize(size gott.Size) {
	e.size = size
}

func (e *Editor) GetOffset() gott.Point {
	return e.offset
}

func (e *Editor) GetScreenPosition() gott.Point {
	return ScreenPosition(e.cursor, e.offset)
}

func (e *Editor) GetDocument() gott.Document {
	return e.document
}

func (e *Editor) Document() *Document {
	return e.document
}

// Scroll recomputes the offset so the cursor stays visible.
func (e *Editor) Scroll() {
	e.offset = ScrollOffset(e.cursor, e.size, e.offset)
}

func (e *Editor) rowLength(row int) int {
	return e.document.GetRowLength(row)
}

// MoveCursor applies one cursor motion. Moving right past the end of a
// line wraps to column 0 of the next line; moving left before column 0
// retreats to the end of the previous one. After any move the column is
// clamped to the destination line's length.
func (e *Editor) MoveCursor(direction int) {
	x, y := e.cursor.Col, e.cursor.Row
	height := e.document.GetRowCount()
	width := e.rowLength(y)
	switch direction {
	case gott.MoveUp:
		if y > 0 {
			y--
		}
	case gott.MoveDown:
		if y < height {
			y++
		}
	case gott.MoveLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = e.rowLength(y)
		}
	case gott.MoveRight:
		if x < width {
			x++
		} else if y < height {
			y++
			x = 0
		}
	}
	if width = e.rowLength(y); x > width {
		x = width
	}
	e.cursor = gott.Point{Row: y, Col: x}
}

// PageUp moves the cursor up by one viewport height.
func (e *Editor) PageUp() {
	y := e.cursor.Row
	if y > e.size.Rows {
		y -= e.size.Rows
	} else {
		y = 0
	}
	e.setCursorRow(y)
}

// PageDown moves the cursor down by one viewport height.
func (e *Editor) PageDown() {
	y := e.cursor.Row
	if y+e.size.Rows < e.document.GetRowCount() {
		y += e.size.Rows
	} else {
		y = e.document.GetRowCount()
	}
	e.setCursorRow(y)
}

func (e *Editor) setCursorRow(row int) {
	e.cursor.Row = row
	if width := e.rowLength(row); e.cursor.Col > width {
		e.cursor.Col = width
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.cursor.Col = e.rowLength(e.cursor.Row)
}

// InsertChar inserts c at the cursor and advances it. Inserting a line
// break splits the current line, so the advance wraps the cursor to
// column 0 of the new line.
func (e *Editor) InsertChar(c rune) {
	e.document.Insert(e.cursor, c)
	e.MoveCursor(gott.MoveRight)
}

// BackspaceChar deletes the cluster before the cursor, joining lines when
// the cursor sits at column 0.
func (e *Editor) BackspaceChar() {
	if e.cursor.Col == 0 && e.cursor.Row == 0 {
		return
	}
	e.MoveCursor(gott.MoveLeft)
	e.document.Delete(e.cursor)
}

// DeleteChar deletes the cluster under the cursor.
func (e *Editor) DeleteChar() {
	e.document.Delete(e.cursor)
}

// StartSearch anchors an incremental search session at the current cursor.
func (e *Editor) StartSearch() {
	e.searchAnchor = e.cursor
	e.searchDirection = gott.Forward
}

// SearchStep re-runs the search for the query as it is being typed. Right
// and down advance past the current match before searching forward; left
// and up search backward; any other key searches forward in place.
func (e *Editor) SearchStep(query string, key gott.Key) {
	moved := false
	switch key {
	case gott.KeyArrowRight, gott.KeyArrowDown:
		e.searchDirection = gott.Forward
		e.MoveCursor(gott.MoveRight)
		moved = true
	case gott.KeyArrowLeft, gott.KeyArrowUp:
		e.searchDirection = gott.Backward
	default:
		e.searchDirection = gott.Forward
	}
	if position, ok := e.document.Find(query, e.cursor, e.searchDirection); ok {
		e.cursor = position
		e.Scroll()
	} else if moved {
		e.MoveCursor(gott.MoveLeft)
	}
	e.document.SetSearchWord(query)
}

// FinishSearch ends the session. An aborted search restores the cursor to
// where the session began; either way the match overlay is cleared.
func (e *Editor) FinishSearch(query string, aborted bool) {
	if aborted {
		e.cursor = e.searchAnchor
		e.Scroll()
	}
	e.document.SetSearchWord("")
}

// ReadFile loads the named file into the document. The caller decides how
// to surface a failure; the document keeps the name either way so a later
// save creates the file.
func (e *Editor) ReadFile(path string) error {
	e.document.SetFileName(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.document.Load(b)
	return nil
}

// Save writes the document to its file name.
func (e *Editor) Save() error {
	name := e.document.GetFileName()
	if name == "" {
		return fmt.Errorf("no file name")
	}
	return e.writeFile(name)
}

// SaveAs renames the document and writes it.
func (e *Editor) SaveAs(path string) error {
	e.document.SetFileName(path)
	return e.writeFile(path)
}

func (e *Editor) writeFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := e.document.WriteTo(f); err != nil {
		return err
	}
	return nil
}
