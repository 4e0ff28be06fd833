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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shadorain/shadovi/commander"
	"github.com/shadorain/shadovi/editor"
	"github.com/shadorain/shadovi/screen"
)

func main() {

	var fileName string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // run a lisp script and exit
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			fileName = argi
		}
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	initialStatus := "Help: Ctrl-S = save | Ctrl-F = find | Ctrl-E = eval | Ctrl-Q = quit"
	if fileName != "" {
		if err := e.ReadFile(fileName); err != nil {
			// a missing file is not fatal; saving will create it
			initialStatus = fmt.Sprintf("Err: Couldn't open file: %s", fileName)
		}
	}
	c.SetMessage(initialStatus)

	if script != "" {
		// Run a script against the editor and exit.
		fmt.Println(c.ParseEvalFile(script))
		return
	}

	// Create a screen to manage display.
	s := screen.NewScreen(screen.DefaultTheme())
	if s == nil {
		return
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.shadovilog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
