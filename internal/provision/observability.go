package provision

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal progress output interface. It is satisfied by
// Observer and consumed directly by the SSH executor.
type Logger interface {
	Printf(format string, v ...any)
}

// Observer defines the interface for structured observability during a
// bootstrap run. Credential-bearing text must never reach an Observer;
// callers suppress it at the invocation level.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// Event represents a structured bootstrap event.
type Event struct {
	Type      EventType
	Phase     string
	Message   string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType represents the type of bootstrap event.
type EventType string

const (
	// EventPhaseStarted indicates a bootstrap phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a bootstrap phase completed successfully.
	EventPhaseCompleted EventType = "phase.completed"
	// EventPhaseFailed indicates a bootstrap phase failed.
	EventPhaseFailed EventType = "phase.failed"

	// EventIdentityResolved indicates the login identity is settled.
	EventIdentityResolved EventType = "identity.resolved"
	// EventUserProvisioned indicates the deploy account was created.
	EventUserProvisioned EventType = "user.provisioned"

	// EventHostRebooting indicates a coordinated reboot was issued.
	EventHostRebooting EventType = "host.rebooting"
	// EventHostAvailable indicates the host answered an availability probe.
	EventHostAvailable EventType = "host.available"
	// EventHostWaiting indicates an availability probe failed and the
	// poller is waiting before the next attempt.
	EventHostWaiting EventType = "host.waiting"

	// EventEndpointReady indicates the git push destination is registered.
	EventEndpointReady EventType = "endpoint.ready"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

// formatEvent formats an event for console output.
func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}
