package server

import (
	"fmt"
	"strings"
	"time"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug" or "info"
}

// WebLogger implements core.Logger by sending messages to a console channel.
// Sends never block: when the channel is full the message is dropped.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	wl.send("info", format, args...)
}

// Debugf receives the renderer's per-tile progress messages
func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	wl.send("debug", format, args...)
}

func (wl *WebLogger) send(level, format string, args ...interface{}) {
	if wl.consoleChan == nil {
		return
	}

	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   fmt.Sprintf("[%s] %s", wl.renderID, message),
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
		// Channel full, skip (don't block)
	}
}
