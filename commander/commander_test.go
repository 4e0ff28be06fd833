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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shadorain/shadovi/editor"
	gott "github.com/shadorain/shadovi/types"
)

func keyEvent(key gott.Key) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Key: key}
}

func charEvent(ch rune) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Ch: ch}
}

func typeString(t *testing.T, c *Commander, s string) {
	t.Helper()
	for _, ch := range s {
		var event *gott.Event
		if ch == ' ' {
			event = keyEvent(gott.KeySpace)
		} else {
			event = charEvent(ch)
		}
		if err := c.ProcessEvent(event); err != nil {
			t.Fatalf("ProcessEvent(%q): %v", ch, err)
		}
	}
}

func TestTypingInsertsText(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)

	typeString(t, c, "hi there")
	c.ProcessEvent(keyEvent(gott.KeyEnter))
	typeString(t, c, "second")

	if got := string(e.Document().Bytes()); got != "hi there\nsecond" {
		t.Errorf("document = %q", got)
	}
	if !e.Document().IsDirty() {
		t.Error("typing should set dirty")
	}
}

func TestQuitRequiresConfirmationWhenDirty(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)
	typeString(t, c, "x")

	for i := 0; i < 3; i++ {
		c.ProcessEvent(keyEvent(gott.KeyCtrlQ))
		if !c.IsRunning() {
			t.Fatalf("quit after %d presses with unsaved changes", i+1)
		}
		if !strings.Contains(c.GetMessage(), "unsaved changes") {
			t.Errorf("press %d: message = %q", i+1, c.GetMessage())
		}
	}
	c.ProcessEvent(keyEvent(gott.KeyCtrlQ))
	if c.IsRunning() {
		t.Error("fourth press should quit")
	}
}

func TestQuitCounterResetsOnOtherKeys(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)
	typeString(t, c, "x")

	c.ProcessEvent(keyEvent(gott.KeyCtrlQ))
	c.ProcessEvent(keyEvent(gott.KeyCtrlQ))
	c.ProcessEvent(keyEvent(gott.KeyArrowLeft))
	if c.GetMessage() != "" {
		t.Errorf("warning should clear: %q", c.GetMessage())
	}
	// the counter starts over
	c.ProcessEvent(keyEvent(gott.KeyCtrlQ))
	if !c.IsRunning() {
		t.Error("quit counter should have been reset")
	}
}

func TestQuitImmediatelyWhenClean(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)
	c.ProcessEvent(keyEvent(gott.KeyCtrlQ))
	if c.IsRunning() {
		t.Error("a clean buffer quits on the first press")
	}
}

func TestSaveAsPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.txt")

	e := editor.NewEditor()
	c := NewCommander(e)
	typeString(t, c, "content")

	c.ProcessEvent(keyEvent(gott.KeyCtrlS))
	if c.GetMode() != gott.ModeSaveAs {
		t.Fatalf("mode = %d, want save-as prompt", c.GetMode())
	}
	typeString(t, c, path)
	if c.GetPromptText() != path {
		t.Errorf("prompt text = %q", c.GetPromptText())
	}
	c.ProcessEvent(keyEvent(gott.KeyEnter))

	if c.GetMode() != gott.ModeEdit {
		t.Errorf("mode after save = %d", c.GetMode())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("saved file: %v", err)
	}
	if string(b) != "content" {
		t.Errorf("file content = %q", b)
	}
	if e.Document().IsDirty() {
		t.Error("save should clear dirty")
	}
}

func TestSaveAsAborted(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)
	typeString(t, c, "content")

	c.ProcessEvent(keyEvent(gott.KeyCtrlS))
	typeString(t, c, "name")
	c.ProcessEvent(keyEvent(gott.KeyEsc))
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("mode = %d", c.GetMode())
	}
	if c.GetMessage() != "Save aborted." {
		t.Errorf("message = %q", c.GetMessage())
	}
	if !e.Document().IsDirty() {
		t.Error("aborting must leave dirty set")
	}
}

func TestLispPromptModeTransitions(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)

	c.ProcessEvent(keyEvent(gott.KeyCtrlE))
	if c.GetMode() != gott.ModeLisp {
		t.Fatalf("mode = %d, want lisp prompt", c.GetMode())
	}
	typeString(t, c, "(line-count)")
	if c.GetLispText() != "(line-count)" {
		t.Errorf("lisp text = %q", c.GetLispText())
	}
	c.ProcessEvent(keyEvent(gott.KeyEsc))
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("mode after escape = %d", c.GetMode())
	}
	if c.GetLispText() != "" {
		t.Errorf("escape should clear the prompt: %q", c.GetLispText())
	}
}

func TestSearchPromptMovesCursor(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)
	typeString(t, c, "alpha")
	c.ProcessEvent(keyEvent(gott.KeyEnter))
	typeString(t, c, "beta")
	e.SetCursor(gott.Point{Row: 0, Col: 0})

	c.ProcessEvent(keyEvent(gott.KeyCtrlF))
	if c.GetMode() != gott.ModeSearch {
		t.Fatalf("mode = %d, want search", c.GetMode())
	}
	typeString(t, c, "beta")
	if e.GetCursor() != (gott.Point{Row: 1, Col: 0}) {
		t.Errorf("cursor = %v", e.GetCursor())
	}
	c.ProcessEvent(keyEvent(gott.KeyEnter))
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("mode after accept = %d", c.GetMode())
	}
	if e.GetCursor() != (gott.Point{Row: 1, Col: 0}) {
		t.Errorf("accepting should keep the cursor: %v", e.GetCursor())
	}
}

func TestSearchPromptEscapeRestoresCursor(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e)
	typeString(t, c, "alpha")
	c.ProcessEvent(keyEvent(gott.KeyEnter))
	typeString(t, c, "beta")
	e.SetCursor(gott.Point{Row: 0, Col: 2})

	c.ProcessEvent(keyEvent(gott.KeyCtrlF))
	typeString(t, c, "beta")
	if e.GetCursor() != (gott.Point{Row: 1, Col: 0}) {
		t.Fatalf("cursor = %v", e.GetCursor())
	}
	c.ProcessEvent(keyEvent(gott.KeyEsc))
	if e.GetCursor() != (gott.Point{Row: 0, Col: 2}) {
		t.Errorf("escape should restore the cursor: %v", e.GetCursor())
	}
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("mode = %d", c.GetMode())
	}
}
