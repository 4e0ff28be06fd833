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
	"errors"
	"log"
	"sync"

	"github.com/steelseries/golisp"

	gott "github.com/shadorain/shadovi/types"
)

// The lisp prompt and --eval scripts drive the editor through these
// primitives. golisp registration is process-global, so the bound editor
// is too; there is one editing session per process.
var lispEditor gott.Editor
var lispOnce sync.Once

func (c *Commander) initLisp() {
	lispEditor = c.editor
	lispOnce.Do(func() {
		golisp.MakePrimitiveFunction("goto-line", "1", gotoLineImpl)
		golisp.MakePrimitiveFunction("line-count", "0", lineCountImpl)
		golisp.MakePrimitiveFunction("insert-text", "1", insertTextImpl)
		golisp.MakePrimitiveFunction("find-text", "1", findTextImpl)
		golisp.MakePrimitiveFunction("save-file", "0", saveFileImpl)
	})
}

// (goto-line n) moves the cursor to the start of 1-based line n.
func gotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto-line requires an integer argument")
	}
	row := int(golisp.IntegerValue(val)) - 1
	if last := lispEditor.GetDocument().GetRowCount() - 1; row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}
	lispEditor.SetCursor(gott.Point{Row: row, Col: 0})
	return val, nil
}

// (line-count) returns the number of lines in the document.
func lineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(lispEditor.GetDocument().GetRowCount())), nil
}

// (insert-text "...") types the string at the cursor.
func insertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	for _, c := range golisp.StringValue(val) {
		lispEditor.InsertChar(c)
	}
	return val, nil
}

// (find-text "...") moves the cursor to the next occurrence, if any.
func findTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("find-text requires a string argument")
	}
	query := golisp.StringValue(val)
	lispEditor.StartSearch()
	lispEditor.SearchStep(query, gott.KeyUnsupported)
	lispEditor.FinishSearch(query, false)
	return val, nil
}

// (save-file) writes the document to its file name.
func saveFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := lispEditor.Save(); err != nil {
		return nil, err
	}
	return golisp.StringWithValue("saved"), nil
}

// ParseEval evaluates a lisp expression and returns a message for the
// message bar.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "ERR " + err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile runs a lisp script from a file, for the --eval flag.
func (c *Commander) ParseEvalFile(path string) string {
	value, err := golisp.ProcessFile(path)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "ERR " + err.Error()
	}
	return golisp.String(value)
}
