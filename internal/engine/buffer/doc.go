// Package buffer provides the line-oriented document at the heart of the
// editor engine.
//
// A Buffer is an ordered, never-empty list of line strings. Text is split into
// lines on a configurable line-break marker; an empty document holds a single
// empty line.
//
// The package provides:
//
//   - Location and LocationRange coordinate types
//   - Line queries and iteration over row windows
//   - Raw mutation primitives (insert, delete before/after, delete range)
//   - Text extraction over a LocationRange
//
// Raw primitives know nothing about undo. They take an explicit location and
// return the location a cursor should move to, leaving cursor ownership to the
// caller.
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello\nworld")
//
//	// Insert at the end of the first line
//	at, _ := buf.InsertAt(buffer.Loc(0, 5), ", there")
//
//	// Remove a cross-line span
//	buf.DeleteRange(buffer.NewRange(buffer.Loc(0, 3), buffer.Loc(1, 2)))
//
// Columns count Unicode code points, not bytes.
//
// Buffer is not safe for concurrent use.
package buffer
