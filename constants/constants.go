package constants

import (
	"fmt"
	"log"
	"time"
)

const (
	LogPrefixFmt = "%-17s "

	//
	// MinRequestDuration is the minimum wall-clock time that a single remote call to the market is
	// allowed to take. RequestMargin is added on top of the remaining time whenever a call has to be
	// padded out.
	//
	MinRequestDuration = 1 * time.Second
	RequestMargin      = 10 * time.Millisecond
)

//
// NewLogger creates a logger whose lines are prefixed with the provided component name, padded so
// that the output of different components lines up.
//
func NewLogger(name string) *log.Logger {
	return log.New(log.Writer(), fmt.Sprintf(LogPrefixFmt, name), log.Ldate|log.Ltime|log.Lmsgprefix)
}
