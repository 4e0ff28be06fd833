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
package commander

import (
	"fmt"
	"time"

	gott "github.com/shadorain/shadovi/types"
)

// Pressing quit this many times with unsaved changes actually quits.
const quitConfirmations = 3

// Status messages disappear after this long.
const messageTimeout = 5 * time.Second

// The Commander converts user input into commands for the Editor. It owns
// the mode state machine: modeless editing, the search prompt, the save-as
// prompt, and the lisp prompt.
type Commander struct {
	editor      gott.Editor
	mode        int
	searchText  string // search query as it is being typed
	promptText  string // file name as it is being typed on the save-as prompt
	lispText    string // lisp expression as it is being typed
	message     string // status message
	messageTime time.Time
	quitTimes   int // remaining quit confirmations while dirty
}

func NewCommander(e gott.Editor) *Commander {
	c := &Commander{editor: e, mode: gott.ModeEdit, quitTimes: quitConfirmations}
	c.initLisp()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gott.Event) error {
	return nil
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModeSearch:
		err = c.ProcessKeySearchMode(event)
	case gott.ModeSaveAs:
		err = c.ProcessKeySaveAsMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	// any key but quit rewinds the quit confirmation counter
	if key != gott.KeyCtrlQ && c.quitTimes < quitConfirmations {
		c.quitTimes = quitConfirmations
		c.SetMessage("")
	}
	if key != 0 {
		switch key {
		case gott.KeyCtrlQ:
			if e.GetDocument().IsDirty() && c.quitTimes > 0 {
				c.SetMessage(fmt.Sprintf(
					"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
					c.quitTimes))
				c.quitTimes--
				return nil
			}
			c.mode = gott.ModeQuit
		case gott.KeyCtrlS:
			c.save()
		case gott.KeyCtrlF:
			c.mode = gott.ModeSearch
			c.searchText = ""
			e.StartSearch()
		case gott.KeyCtrlE:
			c.mode = gott.ModeLisp
			c.lispText = ""
		case gott.KeyArrowUp:
			e.MoveCursor(gott.MoveUp)
		case gott.KeyArrowDown:
			e.MoveCursor(gott.MoveDown)
		case gott.KeyArrowLeft:
			e.MoveCursor(gott.MoveLeft)
		case gott.KeyArrowRight:
			e.MoveCursor(gott.MoveRight)
		case gott.KeyPgup:
			e.PageUp()
		case gott.KeyPgdn:
			e.PageDown()
		case gott.KeyHome:
			e.MoveToBeginningOfLine()
		case gott.KeyEnd:
			e.MoveToEndOfLine()
		case gott.KeyBackspace2:
			e.BackspaceChar()
		case gott.KeyDelete:
			e.DeleteChar()
		case gott.KeyEnter:
			e.InsertChar('\n')
		case gott.KeySpace:
			e.InsertChar(' ')
		case gott.KeyTab:
			e.InsertChar('\t')
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			e.FinishSearch(c.searchText, true)
			c.searchText = ""
			c.mode = gott.ModeEdit
			c.SetMessage("")
			return nil
		case gott.KeyEnter:
			e.FinishSearch(c.searchText, false)
			c.searchText = ""
			c.mode = gott.ModeEdit
			c.SetMessage("")
			return nil
		case gott.KeyBackspace2:
			c.searchText = trimLastRune(c.searchText)
		case gott.KeySpace:
			c.searchText += " "
		}
	}
	if ch != 0 {
		c.searchText += string(ch)
	}
	e.SearchStep(c.searchText, key)
	return nil
}

func (c *Commander) ProcessKeySaveAsMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.promptText = ""
			c.mode = gott.ModeEdit
			c.SetMessage("Save aborted.")
		case gott.KeyEnter:
			c.mode = gott.ModeEdit
			if c.promptText == "" {
				c.SetMessage("Save aborted.")
				return nil
			}
			if err := c.editor.SaveAs(c.promptText); err != nil {
				c.SetMessage("Error writing file!")
			} else {
				c.SetMessage("File saved successfully.")
			}
			c.promptText = ""
		case gott.KeyBackspace2:
			c.promptText = trimLastRune(c.promptText)
		case gott.KeySpace:
			c.promptText += " "
		}
	}
	if ch != 0 {
		c.promptText += string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.lispText = ""
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.SetMessage(c.ParseEval(c.lispText))
			c.lispText = ""
			c.mode = gott.ModeEdit
		case gott.KeyBackspace2:
			c.lispText = trimLastRune(c.lispText)
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) save() {
	if c.editor.GetDocument().GetFileName() == "" {
		c.mode = gott.ModeSaveAs
		c.promptText = ""
		return
	}
	if err := c.editor.Save(); err != nil {
		c.SetMessage("Error writing file!")
	} else {
		c.SetMessage("File saved successfully.")
	}
}

// SetMessage posts a status message; it expires after messageTimeout.
func (c *Commander) SetMessage(message string) {
	c.message = message
	c.messageTime = time.Now()
}

func (c *Commander) GetMessage() string {
	if time.Since(c.messageTime) > messageTimeout {
		return ""
	}
	return c.message
}

func (c *Commander) GetSearchText() string {
	return c.searchText
}

func (c *Commander) GetPromptText() string {
	return c.promptText
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
