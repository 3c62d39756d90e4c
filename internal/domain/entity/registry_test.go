package entity_test

import (
	"testing"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstance(id string, toolID string) *entity.OpenToolInstance {
	tool := &entity.Tool{ID: entity.ToolID(toolID), Name: "Tool " + toolID}
	return entity.NewOpenToolInstance(entity.InstanceID(id), tool, "c1", "")
}

func TestInstanceRegistry_AddPreservesInsertionOrder(t *testing.T) {
	reg := entity.NewInstanceRegistry()

	require.True(t, reg.Add(newInstance("b", "x")))
	require.True(t, reg.Add(newInstance("a", "x")))
	require.True(t, reg.Add(newInstance("c", "y")))

	assert.Equal(t, []entity.InstanceID{"b", "a", "c"}, reg.Keys())
	assert.Equal(t, 3, reg.Count())
	assert.Equal(t, entity.InstanceID("c"), reg.Last())
}

func TestInstanceRegistry_AddRejectsDuplicates(t *testing.T) {
	reg := entity.NewInstanceRegistry()

	require.True(t, reg.Add(newInstance("a", "x")))
	assert.False(t, reg.Add(newInstance("a", "x")))
	assert.False(t, reg.Add(nil))
	assert.Equal(t, 1, reg.Count())
}

func TestInstanceRegistry_RemoveActiveFallsBackToMostRecent(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	reg.Add(newInstance("a", "x"))
	reg.Add(newInstance("b", "x"))
	reg.Add(newInstance("c", "x"))
	reg.SetActive("a")

	require.True(t, reg.Remove("a"))
	assert.Equal(t, entity.InstanceID("c"), reg.ActiveID)

	require.True(t, reg.Remove("c"))
	assert.Equal(t, entity.InstanceID("b"), reg.ActiveID)

	require.True(t, reg.Remove("b"))
	assert.Empty(t, reg.ActiveID)
	assert.False(t, reg.Remove("b"))
}

func TestInstanceRegistry_RemoveInactiveKeepsActive(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	reg.Add(newInstance("a", "x"))
	reg.Add(newInstance("b", "x"))
	reg.SetActive("a")

	reg.Remove("b")
	assert.Equal(t, entity.InstanceID("a"), reg.ActiveID)
}

func TestInstanceRegistry_NextWrapsAround(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	reg.Add(newInstance("A", "x"))
	reg.Add(newInstance("B", "x"))
	reg.Add(newInstance("C", "x"))
	reg.SetActive("B")

	assert.Equal(t, entity.InstanceID("C"), reg.Next(1))
	reg.SetActive("C")
	assert.Equal(t, entity.InstanceID("A"), reg.Next(1))
	reg.SetActive("A")
	assert.Equal(t, entity.InstanceID("C"), reg.Next(-1))
}

func TestInstanceRegistry_NextWithoutActiveReturnsFirst(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	assert.Empty(t, reg.Next(1))

	reg.Add(newInstance("A", "x"))
	reg.Add(newInstance("B", "x"))
	assert.Equal(t, entity.InstanceID("A"), reg.Next(1))
}

func TestInstanceRegistry_SetActiveUnknownIsIgnored(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	reg.Add(newInstance("a", "x"))
	reg.SetActive("a")

	assert.False(t, reg.SetActive("missing"))
	assert.Equal(t, entity.InstanceID("a"), reg.ActiveID)
}

func TestInstanceRegistry_NextDisplayNumber(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	assert.Equal(t, 1, reg.NextDisplayNumber("x"))

	first := newInstance("a", "x")
	first.DisplayNumber = reg.NextDisplayNumber("x")
	reg.Add(first)

	second := newInstance("b", "x")
	second.DisplayNumber = reg.NextDisplayNumber("x")
	reg.Add(second)

	assert.Equal(t, 2, second.DisplayNumber)
	assert.Equal(t, "Tool x (2)", second.Label())
	assert.Equal(t, "Tool x", first.Label())
	assert.Equal(t, 1, reg.NextDisplayNumber("y"))
	assert.Equal(t, 2, reg.CountByTool("x"))

	// Closing the first frees number 1 for the next launch.
	reg.Remove("a")
	assert.Equal(t, 1, reg.NextDisplayNumber("x"))
}

func TestInstanceRegistry_Clear(t *testing.T) {
	reg := entity.NewInstanceRegistry()
	reg.Add(newInstance("a", "x"))
	reg.SetActive("a")

	reg.Clear()
	assert.Zero(t, reg.Count())
	assert.Empty(t, reg.ActiveID)
	assert.Nil(t, reg.Active())
}
