package viewer

import "time"

// UI timing constants
const (
	// uiTickInterval is the base tick rate driving animations and the
	// elapsed-since-update display
	uiTickInterval = 100 * time.Millisecond

	// Derived ticks per second for spring animations
	uiTicksPerSecond = int(time.Second / uiTickInterval)

	tickCounterMaximum = 1000000

	// statsPollingInterval is how often vigil samples its own cpu/mem
	statsPollingInterval = 2 * time.Second
)

// Rendering policy constants
const (
	// liveRowCap bounds how many rows are painted while following the
	// live feed; paused views render the full snapshot
	liveRowCap = 100

	// scrollPauseThreshold is the distance from bottom, in lines, at
	// which a manual scroll is treated as an intentional pause
	scrollPauseThreshold = 5
)

// Layout constants
const (
	headerHeight  = 1
	detailHeight  = 1
	statusHeight  = 1
	helpHeight    = 1
	chromeHeight  = headerHeight + detailHeight + statusHeight + helpHeight
	minViewHeight = 3
)
