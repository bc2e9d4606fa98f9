// Package flog is a minimal leveled logger for session lifecycle events
// (adapted from the teacher's flog). It never blocks the read/write hot
// path: log calls enqueue onto a buffered channel and a single goroutine
// drains it, dropping (and counting) messages once the channel is full.
package flog

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

type Level int

const None Level = -1

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var (
	minLevel = Info
	logCh    = make(chan string, 1024)
	dropped  atomic.Uint64
	started  atomic.Bool
)

// Dropped returns the number of log lines dropped because the channel was full.
func Dropped() uint64 { return dropped.Load() }

var levelStrings = [...]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
}

func (l Level) String() string {
	if int(l) >= 0 && int(l) < len(levelStrings) {
		return levelStrings[l]
	}
	if l == None {
		return "None"
	}
	return "UNKNOWN"
}

// SetLevel sets the minimum level that reaches stdout and starts the drain
// goroutine on first use. Pass None to silence logging entirely.
func SetLevel(l Level) {
	minLevel = l
	if l == None {
		return
	}
	if started.CompareAndSwap(false, true) {
		go func() {
			for msg := range logCh {
				fmt.Fprint(os.Stdout, msg)
			}
		}()
	}
}

func logf(level Level, format string, args ...any) {
	if level < minLevel || minLevel == None {
		return
	}

	// Check channel capacity before formatting to avoid wasted allocations.
	if len(logCh) == cap(logCh) {
		dropped.Add(1)
		return
	}

	now := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s\n", now, level, fmt.Sprintf(format, args...))

	select {
	case logCh <- line:
	default:
		dropped.Add(1)
	}
}

func Debugf(format string, args ...any) { logf(Debug, format, args...) }
func Infof(format string, args ...any)  { logf(Info, format, args...) }
func Warnf(format string, args ...any)  { logf(Warn, format, args...) }
func Errorf(format string, args ...any) { logf(Error, format, args...) }
