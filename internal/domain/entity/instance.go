package entity

import (
	"fmt"
	"time"
)

// InstanceID identifies one launch of a tool. A fresh id is minted per launch.
type InstanceID string

// OpenToolInstance is one concurrently open launch of a tool.
type OpenToolInstance struct {
	InstanceID            InstanceID
	ToolID                ToolID
	Tool                  *Tool
	IsPinned              bool
	PrimaryConnectionID   ConnectionID
	SecondaryConnectionID ConnectionID
	// DisplayNumber disambiguates concurrent instances of the same tool (1-based).
	DisplayNumber int
	LaunchedAt    time.Time
}

// NewOpenToolInstance creates an instance bound to the given connections.
func NewOpenToolInstance(id InstanceID, tool *Tool, primary, secondary ConnectionID) *OpenToolInstance {
	inst := &OpenToolInstance{
		InstanceID:            id,
		Tool:                  tool,
		PrimaryConnectionID:   primary,
		SecondaryConnectionID: secondary,
		DisplayNumber:         1,
		LaunchedAt:            time.Now(),
	}
	if tool != nil {
		inst.ToolID = tool.ID
	}
	return inst
}

// Label returns the tab label: the tool name, suffixed with " (N)" for N > 1.
func (i *OpenToolInstance) Label() string {
	name := string(i.ToolID)
	if i.Tool != nil && i.Tool.Name != "" {
		name = i.Tool.Name
	}
	if i.DisplayNumber > 1 {
		return fmt.Sprintf("%s (%d)", name, i.DisplayNumber)
	}
	return name
}

// HasSecondary reports whether a secondary connection is bound.
func (i *OpenToolInstance) HasSecondary() bool {
	return i.SecondaryConnectionID != ""
}
