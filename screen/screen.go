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
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gott "github.com/shadorain/shadovi/types"
)

const Name = "shadovi"
const Version = "0.1.0"

// A Theme maps highlight categories to termbox attributes.
type Theme struct {
	Foreground termbox.Attribute
	Background termbox.Attribute
	Colors     map[gott.Category]termbox.Attribute
}

func DefaultTheme() Theme {
	return Theme{
		Foreground: termbox.ColorWhite,
		Background: termbox.ColorBlack,
		Colors: map[gott.Category]termbox.Attribute{
			gott.CategoryNumber:         0x83,
			gott.CategoryString:         0xe0,
			gott.CategoryCharacter:      0x71,
			gott.CategoryComment:        0xf8,
			gott.CategoryKeywordPrimary: 0x70,
			gott.CategoryMatch:          0x27,
		},
	}
}

func (t Theme) attribute(category gott.Category) termbox.Attribute {
	if attr, ok := t.Colors[category]; ok {
		return attr
	}
	return t.Foreground
}

// The Screen draws the state of an Editor.
type Screen struct {
	size  gott.Size // screen size
	theme Theme
}

func NewScreen(theme Theme) *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{theme: theme}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	termbox.Clear(s.theme.Foreground, s.theme.Background)
	var screenSize gott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// the bottom two rows hold the status bar and the message bar
	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	s.renderRows(e, editSize)
	s.renderStatusBar(e)
	s.renderMessageBar(e, c)
	s.SetCursor(e.GetScreenPosition())
	termbox.Flush()
}

func (s *Screen) renderRows(e gott.Editor, editSize gott.Size) {
	document := e.GetDocument()
	offset := e.GetOffset()
	for i := 0; i < editSize.Rows; i++ {
		fragments, ok := document.RenderRow(i+offset.Row, offset.Col, offset.Col+editSize.Cols)
		if ok {
			x := 0
			for _, fragment := range fragments {
				attr := s.theme.attribute(fragment.Category)
				for _, ch := range fragment.Text {
					if x >= editSize.Cols {
						break
					}
					termbox.SetCell(x, i, ch, attr, s.theme.Background)
					x += runewidth.RuneWidth(ch)
				}
			}
		} else if document.GetRowCount() == 0 && i == editSize.Rows/3 {
			s.renderWelcome(i)
		} else {
			termbox.SetCell(0, i, '~', s.theme.Foreground, s.theme.Background)
		}
	}
}

func (s *Screen) renderWelcome(row int) {
	message := fmt.Sprintf("%s editor -- version %s", Name, Version)
	padding := (s.size.Cols - len(message)) / 2
	text := "~"
	for len(text) < padding {
		text += " "
	}
	text += message
	text = runewidth.Truncate(text, s.size.Cols, "")
	for x, ch := range text {
		termbox.SetCell(x, row, ch, s.theme.Foreground, s.theme.Background)
	}
}

func (s *Screen) renderStatusBar(e gott.Editor) {
	document := e.GetDocument()
	fileName := document.GetFileName()
	if fileName == "" {
		fileName = "[No Name]"
	}
	fileName = runewidth.Truncate(fileName, 20, "")
	modified := ""
	if document.IsDirty() {
		modified = " (modified)"
	}
	text := fmt.Sprintf(" %s - %d lines%s", fileName, document.GetRowCount(), modified)
	finalText := fmt.Sprintf(" %s | %d/%d ",
		document.GetFileTypeName(), e.GetCursor().Row+1, document.GetRowCount())
	for len(text) < s.size.Cols-len(finalText) {
		text = text + " "
	}
	text += finalText
	text = runewidth.Truncate(text, s.size.Cols, "")
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, s.theme.Background, s.theme.Foreground)
	}
}

func (s *Screen) renderMessageBar(e gott.Editor, c gott.Commander) {
	var line string
	switch c.GetMode() {
	case gott.ModeSearch:
		line = "Search (ESC to cancel, Arrows to navigate): " + c.GetSearchText()
	case gott.ModeSaveAs:
		line = "Save as: " + c.GetPromptText()
	case gott.ModeLisp:
		line = "eval: " + c.GetLispText()
	default:
		line = c.GetMessage()
	}
	line = runewidth.Truncate(line, s.size.Cols, "")
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, s.theme.Foreground, s.theme.Background)
	}
}

func (s *Screen) SetCell(col int, row int, c rune, category gott.Category) {
	termbox.SetCell(col, row, c, s.theme.attribute(category), s.theme.Background)
}

func (s *Screen) SetCursor(position gott.Point) {
	termbox.SetCursor(position.Col, position.Row)
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	eventType := gott.EventKey
	if event.Type == termbox.EventResize {
		eventType = gott.EventResize
	}
	return &gott.Event{
		Type: eventType,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace:
		return gott.KeyBackspace2
	case termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
