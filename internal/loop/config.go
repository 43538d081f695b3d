package loop

import "time"

// Loop configuration constants.
// All tunable frame parameters are centralized here for easy adjustment.

// Frame pacing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)
