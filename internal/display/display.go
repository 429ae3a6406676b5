// Package display defines the contract the control core expects from the
// rendering subsystem. The core never draws; it asks the display for
// snapshots, requests refreshes, and hands snapshot pairs over for
// transition animation.
package display

// Snapshot captures the two rendered lines of the player display at one
// instant.
type Snapshot struct {
	Line1 string
	Line2 string
}

// Display is the collaborator contract for the rendering subsystem.
type Display interface {
	// CurrentLines renders and returns the display content for the
	// session's current state.
	CurrentLines() Snapshot

	// PushLeft animates a transition from old to new sliding leftwards
	// (entering a deeper mode).
	PushLeft(old, new Snapshot)

	// PushRight animates a transition from old to new sliding rightwards
	// (returning to a parent mode).
	PushRight(old, new Snapshot)

	// RequestUpdate asks for a refresh of the primary screen.
	RequestUpdate()

	// RequestScreen2Update asks for a refresh of the secondary screen.
	RequestScreen2Update()

	// HasSecondaryScreen reports whether a secondary screen is attached.
	HasSecondaryScreen() bool

	// ShowsExtendedText reports whether the display is configured to show
	// continuous extended text on the secondary screen.
	ShowsExtendedText() bool

	// IsUpdateInProgress reports whether the display is mid-update; the
	// scheduler skips visible refreshes while this holds.
	IsUpdateInProgress() bool

	// AnimationInProgress reports whether a transition animation is
	// running; screen2 refreshes yield to it.
	AnimationInProgress() bool
}
