package entity

import "time"

// SessionSnapshotVersion is the current schema version of the persisted session.
// Increment when making breaking changes to the serialization format.
const SessionSnapshotVersion = 1

// SessionSnapshot is the durable record of open tool instances.
type SessionSnapshot struct {
	Version          int                `json:"version"`
	OpenTools        []OpenToolSnapshot `json:"openTools"`
	ActiveInstanceID InstanceID         `json:"activeInstanceId,omitempty"`
	SavedAt          time.Time          `json:"savedAt"`
}

// OpenToolSnapshot captures one open instance, keyed by its launch ordinal
// (its position in OpenTools).
type OpenToolSnapshot struct {
	InstanceID            InstanceID   `json:"instanceId"`
	ToolID                ToolID       `json:"toolId"`
	IsPinned              bool         `json:"isPinned"`
	ConnectionID          ConnectionID `json:"connectionId,omitempty"`
	SecondaryConnectionID ConnectionID `json:"secondaryConnectionId,omitempty"`
}

// SnapshotFromRegistry captures the registry in insertion order.
func SnapshotFromRegistry(reg *InstanceRegistry) *SessionSnapshot {
	snap := &SessionSnapshot{
		Version:   SessionSnapshotVersion,
		OpenTools: []OpenToolSnapshot{},
		SavedAt:   time.Now(),
	}
	if reg == nil {
		return snap
	}
	for _, inst := range reg.Instances() {
		snap.OpenTools = append(snap.OpenTools, OpenToolSnapshot{
			InstanceID:            inst.InstanceID,
			ToolID:                inst.ToolID,
			IsPinned:              inst.IsPinned,
			ConnectionID:          inst.PrimaryConnectionID,
			SecondaryConnectionID: inst.SecondaryConnectionID,
		})
	}
	snap.ActiveInstanceID = reg.ActiveID
	return snap
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// RestoreEntry is one instance to relaunch, with a freshly minted id.
type RestoreEntry struct {
	PreviousID InstanceID
	InstanceID InstanceID
	ToolID     ToolID
	IsPinned   bool
	Primary    ConnectionID
	Secondary  ConnectionID
}

// RestorePlan is the ordered relaunch list derived from a snapshot.
type RestorePlan struct {
	Entries []RestoreEntry
	// ActiveInstanceID is the new id of the previously active instance.
	ActiveInstanceID InstanceID
}

// PlanRestore maps a snapshot onto new instance ids. Entries without a tool id
// are dropped. Pin state and both connection slots carry over per ordinal.
func PlanRestore(snap *SessionSnapshot, idGen IDGenerator) *RestorePlan {
	plan := &RestorePlan{Entries: []RestoreEntry{}}
	if snap == nil {
		return plan
	}
	for _, tool := range snap.OpenTools {
		if tool.ToolID == "" {
			continue
		}
		entry := RestoreEntry{
			PreviousID: tool.InstanceID,
			InstanceID: InstanceID(idGen()),
			ToolID:     tool.ToolID,
			IsPinned:   tool.IsPinned,
			Primary:    tool.ConnectionID,
			Secondary:  tool.SecondaryConnectionID,
		}
		if tool.InstanceID != "" && tool.InstanceID == snap.ActiveInstanceID {
			plan.ActiveInstanceID = entry.InstanceID
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan
}
