// Package bounded captures single lines of interactive input into a fixed-capacity buffer.
//
// A line that does not fit is rejected as a whole: nothing of it is returned,
// and the rest of the line is drained so the next read starts on a fresh line.
package bounded
