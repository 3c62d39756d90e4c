package entity

// ToolID identifies an installed tool.
type ToolID string

// MultiConnectionMode declares whether a tool needs a secondary connection.
type MultiConnectionMode string

const (
	// MultiConnectionNone is a single-connection tool.
	MultiConnectionNone MultiConnectionMode = ""
	// MultiConnectionOptional asks for two connections but accepts only a primary.
	MultiConnectionOptional MultiConnectionMode = "optional"
	// MultiConnectionRequired needs both a primary and a secondary connection.
	MultiConnectionRequired MultiConnectionMode = "required"
)

// CSPException is a content security policy relaxation a tool asks for.
type CSPException struct {
	Directive string   `json:"directive"`
	Sources   []string `json:"sources"`
	Reason    string   `json:"reason,omitempty"`
}

// Tool is the metadata of an installed tool.
type Tool struct {
	ID              ToolID
	Name            string
	Version         string
	Description     string
	Author          string
	Icon            string
	MultiConnection MultiConnectionMode
	CSPExceptions   []CSPException
}

// RequiresMultiConnection reports whether launching needs the dual selection dialog.
func (t *Tool) RequiresMultiConnection() bool {
	return t != nil && (t.MultiConnection == MultiConnectionOptional || t.MultiConnection == MultiConnectionRequired)
}

// SecondaryRequired reports whether the secondary slot must be filled.
func (t *Tool) SecondaryRequired() bool {
	return t != nil && t.MultiConnection == MultiConnectionRequired
}

// NeedsCSPConsent reports whether the tool declares permission exceptions.
func (t *Tool) NeedsCSPConsent() bool {
	return t != nil && len(t.CSPExceptions) > 0
}
