package types

import (
	"fmt"
	"strings"
)

// EventKind is the name Hyprland puts before ">>" on its event socket.
type EventKind string

const (
	EventWorkspace        EventKind = "workspace"
	EventCreateWorkspace  EventKind = "createworkspace"
	EventDestroyWorkspace EventKind = "destroyworkspace"
	EventOpenWindow       EventKind = "openwindow"
	EventCloseWindow      EventKind = "closewindow"
	EventMoveWindow       EventKind = "movewindow"
	EventWindowTitle      EventKind = "windowtitle"
	EventFocusedMonitor   EventKind = "focusedmon"
	EventActiveWindow     EventKind = "activewindow"
)

const eventSeparator = ">>"

// Event is one line received from the event socket.
type Event struct {
	Kind EventKind
	Data string
}

// ParseEvent splits a raw "KIND>>DATA" line.
func ParseEvent(line string) (Event, error) {
	kind, data, ok := strings.Cut(strings.TrimRight(line, "\r\n"), eventSeparator)
	if !ok || kind == "" {
		return Event{}, fmt.Errorf("malformed event line %q", line)
	}
	return Event{Kind: EventKind(kind), Data: data}, nil
}

// ActiveWindowClass extracts the class from an activewindow payload
// ("class,title"). Titles may contain commas, classes do not.
func ActiveWindowClass(data string) string {
	class, _, _ := strings.Cut(data, ",")
	return class
}
