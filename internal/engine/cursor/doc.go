// Package cursor provides cursor movement and selection state for the
// line-based document.
//
// Movement follows fixed boundary rules:
//
//   - Left/Right step one column, wrapping to the neighbouring row at a row
//     boundary
//   - Up/Down keep the column where the target row allows it and clamp it
//     otherwise; on the first/last row they snap to the row start/end
//   - At the document extremes every move is a no-op reporting false
//
// State pairs the cursor Location with the current selection. The selection
// is independent of the cursor but is conventionally collapsed onto it when
// nothing is selected.
//
// Basic usage:
//
//	st := cursor.NewState(buffer.Loc(0, 0))
//	if st.Move(buf, cursor.Right) {
//	    fmt.Println(st.Cursor()) // (0:1)
//	}
//
// State is not safe for concurrent use.
package cursor
