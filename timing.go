package bidsort

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs at debug level how long funcName took since start.
// Use it as `defer TrackTime("name", time.Now())`.
func TrackTime(funcName string, start time.Time) {
	elapsed := time.Since(start)
	log.Debugf("%s took %d ms", funcName, elapsed.Milliseconds())
}
