package events

import (
	"time"

	"github.com/plantops/gspmon/core/board"
)

// SnapshotEvent is published every time the feed assembles a snapshot.
type SnapshotEvent struct {
	Seq           int
	Snapshot      board.Snapshot
	BuildDuration time.Duration
	Time          time.Time
}
