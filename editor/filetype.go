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
)

// A FileType names a content type and carries the highlight options used
// for it.
type FileType struct {
	Name    string
	Options Options
}

var goKeywords = []string{
	"break", "default", "func", "interface", "select",
	"case", "defer", "go", "map", "struct",
	"chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type",
	"continue", "for", "import", "return", "var",
}

var rustKeywords = []string{
	"as", "break", "const", "continue", "crate", "dyn",
	"else", "enum", "extern", "false", "fn", "for", "if",
	"impl", "in", "let", "loop", "match", "mod", "move",
	"mut", "pub", "ref", "return", "self", "static",
	"struct", "super", "trait", "true", "type", "unsafe",
	"use", "where", "while",
}

// FileTypeFrom selects a file type from a file name. Unknown extensions
// get no token recognition at all.
func FileTypeFrom(fileName string) FileType {
	switch {
	case strings.HasSuffix(fileName, ".go"):
		return FileType{
			Name: "go",
			Options: Options{
				Numbers:         true,
				Strings:         true,
				Characters:      true,
				Comments:        true,
				KeywordsPrimary: goKeywords,
			},
		}
	case strings.HasSuffix(fileName, ".rs"):
		return FileType{
			Name: "rust",
			Options: Options{
				Numbers:         true,
				Strings:         true,
				Characters:      true,
				Comments:        true,
				KeywordsPrimary: rustKeywords,
			},
		}
	default:
		return FileType{Name: "txt"}
	}
}
