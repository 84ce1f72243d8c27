package types

// Hyprland-specific types for parsing Hyprland IPC responses

type HyprlandWorkspace struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Monitor         string `json:"monitor"`
	MonitorID       int    `json:"monitorID"`
	Windows         int    `json:"windows"`
	HasFullscreen   bool   `json:"hasfullscreen"`
	LastWindow      string `json:"lastwindow"`
	LastWindowTitle string `json:"lastwindowtitle"`
}

// HyprlandWindow is the j/activewindow response. Hyprland answers with an
// empty object when no window is focused, leaving every field zero.
type HyprlandWindow struct {
	Address   string `json:"address"`
	Class     string `json:"class"`
	Title     string `json:"title"`
	PID       int    `json:"pid"`
	Workspace struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"workspace"`
}

// Focused reports whether the response describes an actual window.
func (w HyprlandWindow) Focused() bool {
	return w.Address != "" || w.Class != ""
}
