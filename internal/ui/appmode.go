package ui

// AppMode is the top-level application mode: the auth screen until a session
// exists, then the workspace.
type AppMode int

const (
	ModeAuth AppMode = iota
	ModeWorkspace
)

func (m AppMode) String() string {
	switch m {
	case ModeAuth:
		return "Auth"
	case ModeWorkspace:
		return "Workspace"
	default:
		return "Unknown"
	}
}

// Tab selects the active workspace panel.
type Tab int

const (
	TabUpload Tab = iota
	TabDocuments
	TabCompare
	TabChat

	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabUpload:
		return "Upload"
	case TabDocuments:
		return "Documents"
	case TabCompare:
		return "Compare"
	case TabChat:
		return "Chat"
	default:
		return "Unknown"
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}
