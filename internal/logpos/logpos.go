// Package logpos defines the log position type shared by the storage and
// index layers: the (segment, offset) pair that locates one record on disk.
package logpos

// Position identifies where a record begins within a segment file: the byte
// offset from the start of the segment to the record's first byte, not
// counting any preceding record's trailing newline.
type Position struct {
	Segment string
	Offset  int64
}
