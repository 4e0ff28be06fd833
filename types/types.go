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
package types

// Editor modes
const (
	ModeEdit   = 0
	ModeSearch = 1
	ModeSaveAs = 2
	ModeLisp   = 3
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Direction selects which way a search scans from its starting point.
type Direction int

const (
	Forward  Direction = 0
	Backward Direction = 1
)

// A Category classifies one grapheme cluster for display.
type Category int

const (
	CategoryNone Category = iota
	CategoryNumber
	CategoryString
	CategoryCharacter
	CategoryComment
	CategoryKeywordPrimary
	CategoryMatch
)

// A Fragment is a run of rendered text sharing one highlight category.
// Row rendering compresses adjacent graphemes of equal category into a
// single fragment so the display layer emits one style change per run.
type Fragment struct {
	Text     string
	Category Category
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyCtrlE
	KeyCtrlF
	KeyCtrlQ
	KeyCtrlS
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Point
	GetScreenPosition() Point
	GetDocument() Document

	MoveCursor(direction int)
	PageUp()
	PageDown()
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	Scroll()

	InsertChar(c rune)
	BackspaceChar()
	DeleteChar()

	StartSearch()
	SearchStep(query string, key Key)
	FinishSearch(query string, aborted bool)

	ReadFile(path string) error
	Save() error
	SaveAs(path string) error
}

type Document interface {
	GetFileName() string
	GetFileTypeName() string
	GetRowCount() int
	IsDirty() bool
	RenderRow(index int, start int, end int) ([]Fragment, bool)
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetSearchText() string
	GetLispText() string
	GetPromptText() string
	GetMessage() string
}

type Display interface {
	SetCell(col int, row int, c rune, category Category)
	SetCursor(position Point)
}
