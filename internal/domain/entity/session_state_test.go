package entity_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockIDGenerator creates a simple ID generator for testing.
func mockIDGenerator() entity.IDGenerator {
	var counter uint64
	return func() string {
		return fmt.Sprintf("new_%d", atomic.AddUint64(&counter, 1))
	}
}

func TestSnapshotFromRegistry_Nil(t *testing.T) {
	snap := entity.SnapshotFromRegistry(nil)
	require.NotNil(t, snap)
	assert.Equal(t, entity.SessionSnapshotVersion, snap.Version)
	assert.Empty(t, snap.OpenTools)
}

func TestSnapshotFromRegistry_CapturesOrderPinsAndBindings(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	first := newInstance("i1", "tool-a")
	first.IsPinned = true
	second := newInstance("i2", "tool-b")
	second.SecondaryConnectionID = "c2"
	reg.Add(first)
	reg.Add(second)
	reg.SetActive("i2")

	snap := entity.SnapshotFromRegistry(reg)

	require.Len(t, snap.OpenTools, 2)
	assert.Equal(t, entity.OpenToolSnapshot{
		InstanceID: "i1", ToolID: "tool-a", IsPinned: true, ConnectionID: "c1",
	}, snap.OpenTools[0])
	assert.Equal(t, entity.OpenToolSnapshot{
		InstanceID: "i2", ToolID: "tool-b", ConnectionID: "c1", SecondaryConnectionID: "c2",
	}, snap.OpenTools[1])
	assert.Equal(t, entity.InstanceID("i2"), snap.ActiveInstanceID)
	assert.False(t, snap.SavedAt.IsZero())
}

func TestPlanRestore_GeneratesNewIDsAndMapsActive(t *testing.T) {
	snap := &entity.SessionSnapshot{
		Version: 1,
		OpenTools: []entity.OpenToolSnapshot{
			{InstanceID: "old1", ToolID: "tool-a", IsPinned: true, ConnectionID: "c1"},
			{InstanceID: "old2", ToolID: ""},
			{InstanceID: "old3", ToolID: "tool-a", ConnectionID: "c3", SecondaryConnectionID: "c4"},
		},
		ActiveInstanceID: "old3",
	}

	plan := entity.PlanRestore(snap, mockIDGenerator())

	require.Len(t, plan.Entries, 2)
	assert.Equal(t, entity.InstanceID("new_1"), plan.Entries[0].InstanceID)
	assert.Equal(t, entity.InstanceID("old1"), plan.Entries[0].PreviousID)
	assert.True(t, plan.Entries[0].IsPinned)
	assert.Equal(t, entity.ConnectionID("c4"), plan.Entries[1].Secondary)
	assert.Equal(t, plan.Entries[1].InstanceID, plan.ActiveInstanceID)
}

func TestPlanRestore_Nil(t *testing.T) {
	plan := entity.PlanRestore(nil, mockIDGenerator())
	assert.Empty(t, plan.Entries)
	assert.Empty(t, plan.ActiveInstanceID)
}
