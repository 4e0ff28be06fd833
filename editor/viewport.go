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
	gott "github.com/shadorain/shadovi/types"
)

// ScrollOffset returns the minimal adjustment of offset that keeps cursor
// inside a viewport of the given size. A cursor above or left of the
// offset pulls the offset back to it; a cursor past the far edge advances
// the offset by just enough to reveal the cursor row or column.
func ScrollOffset(cursor gott.Point, size gott.Size, offset gott.Point) gott.Point {
	if cursor.Row < offset.Row {
		offset.Row = cursor.Row
	} else if cursor.Row >= offset.Row+size.Rows {
		offset.Row = cursor.Row - size.Rows + 1
	}
	if cursor.Col < offset.Col {
		offset.Col = cursor.Col
	} else if cursor.Col >= offset.Col+size.Cols {
		offset.Col = cursor.Col - size.Cols + 1
	}
	return offset
}

// ScreenPosition converts a logical cursor position to screen-relative
// coordinates under the given scroll offset.
func ScreenPosition(cursor, offset gott.Point) gott.Point {
	return gott.Point{
		Row: cursor.Row - offset.Row,
		Col: cursor.Col - offset.Col,
	}
}
