package vectortile

import (
	"errors"
	"fmt"
)

// ErrOutsideOfTile is returned by Buffer.Append when a record's location
// falls outside the tile's half-open longitude/latitude box. The record is
// discarded and the buffer is left unchanged.
var ErrOutsideOfTile = errors.New("vectortile: record location is outside of tile")

// DuplicateRecordIDError is returned by Buffer.Append when a record with
// the same RecordID was already accepted into the buffer. It carries the
// offending ID back to the caller for logging.
type DuplicateRecordIDError struct {
	RecordID string
}

func (e *DuplicateRecordIDError) Error() string {
	return fmt.Sprintf("vectortile: duplicate record id %q", e.RecordID)
}
