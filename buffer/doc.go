// Package buffer implements the document model for ked: an ordered sequence
// of rows, each an ordered sequence of grapheme clusters.
//
// Coordinates are 0-based (Row, Col) in clusters. Col may equal the row
// length, meaning end-of-row. The buffer always holds at least one row.
// Out-of-range coordinates fail with ErrInvalidPosition and never mutate.
package buffer
