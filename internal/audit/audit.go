// Package audit records account lifecycle events.
// Events are appended as JSON Lines (JSONL) to a single history file.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a lifecycle event.
type EventType string

const (
	EventAdd     EventType = "add"
	EventLaunch  EventType = "launch"
	EventHeal    EventType = "heal"
	EventDelete  EventType = "delete"
	EventRepair  EventType = "repair"
	EventWarning EventType = "warning"
	EventError   EventType = "error"
)

// Event represents a single audit log entry.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Account   string    `json:"account"`
	Box       string    `json:"box,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads audit events.
type Logger struct {
	path string
}

// NewLogger creates a new audit logger writing to path.
func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the history file location.
func (l *Logger) Path() string {
	return l.path
}

// Log appends an event to the history.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, account, box, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Account:   account,
		Box:       box,
		Details:   details,
	})
}

// Events reads events in chronological order. A non-empty account keeps
// only that account's events (case-insensitive).
func (l *Logger) Events(account string) ([]Event, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		if account != "" && !strings.EqualFold(event.Account, account) {
			continue
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Tail returns the last n events for account ("" for all). n <= 0 means
// every event.
func (l *Logger) Tail(account string, n int) ([]Event, error) {
	events, err := l.Events(account)
	if err != nil || n <= 0 || len(events) <= n {
		return events, err
	}
	return events[len(events)-n:], nil
}
