package types

// WorkspaceSnapshot is a compositor-agnostic view of one workspace and its
// live window count.
type WorkspaceSnapshot struct {
	ID      int `json:"id"`
	Windows int `json:"windows"`
}

// WorkspaceWindows is one row of the open_windows table. Field order is part
// of the output format.
type WorkspaceWindows struct {
	ID      int `json:"id"`
	Windows int `json:"windows"`
}
