// Package events defines the dashboard events emitted on the event bus.
//
// Available event types:
//   - SnapshotEvent: freshly assembled dashboard snapshot
package events
