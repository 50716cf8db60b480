// Package logging provides the standardized log line format shared by every
// peer and the printer: "[TS: <timestamp>] CLIENTE <id>: <message>" from a
// peer, "[TS: <timestamp>] SERVIDOR: <message>" from the printer. Wording
// beyond the timestamp and identifier is not load-bearing.
package logging

import (
	"fmt"
	"log"
	"os"
)

// Logger wraps a standard library *log.Logger configured to flush
// immediately to stdout, with no extra prefix or timestamp of its own —
// the Lamport timestamp carried by callers is the only timestamp that
// matters here.
type Logger struct {
	out      *log.Logger
	clientID int32
	isServer bool
}

// NewPeerLogger returns a Logger that tags every line with the given peer
// identifier.
func NewPeerLogger(clientID int32) *Logger {
	return &Logger{
		out:      log.New(os.Stdout, "", 0),
		clientID: clientID,
	}
}

// NewPrinterLogger returns a Logger that tags every line as coming from the
// printer ("SERVIDOR").
func NewPrinterLogger() *Logger {
	return &Logger{
		out:      log.New(os.Stdout, "", 0),
		isServer: true,
	}
}

func (l *Logger) format(level string, timestamp uint64, message string) string {
	who := "SERVIDOR"
	if !l.isServer {
		who = fmt.Sprintf("CLIENTE %d", l.clientID)
	}
	return fmt.Sprintf("[TS: %d] %s: %s: %s", timestamp, who, level, message)
}

// Info logs an informational line at the given Lamport timestamp.
func (l *Logger) Info(timestamp uint64, message string) {
	l.out.Println(l.format("INFO", timestamp, message))
}

// Warning logs a warning line at the given Lamport timestamp.
func (l *Logger) Warning(timestamp uint64, message string) {
	l.out.Println(l.format("WARNING", timestamp, message))
}

// Error logs an error line at the given Lamport timestamp.
func (l *Logger) Error(timestamp uint64, message string) {
	l.out.Println(l.format("ERROR", timestamp, message))
}

// PrintLine logs a job's content as though the client itself printed it:
// "[TS: <ts>] CLIENTE <id>: <message>" with no level marker, used by the
// printer when it receives a job so the job reads as the client's own line.
func PrintLine(clientID int32, timestamp int64, message string) {
	fmt.Printf("[TS: %d] CLIENTE %d: %s\n", timestamp, clientID, message)
}
