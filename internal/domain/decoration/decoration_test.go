package decoration_test

import (
	"testing"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/decoration"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		primary   entity.Environment
		secondary entity.Environment
		wantClass string
		wantSplit bool
	}{
		{name: "no connection", wantClass: ""},
		{name: "single dev", primary: entity.EnvironmentDev, wantClass: "env-border-dev"},
		{name: "single production", primary: entity.EnvironmentProduction, wantClass: "env-border-production"},
		{
			name:      "dual differing tiers",
			primary:   entity.EnvironmentDev,
			secondary: entity.EnvironmentProduction,
			wantClass: "env-split-dev-production",
			wantSplit: true,
		},
		{
			name:      "dual order is preserved",
			primary:   entity.EnvironmentProduction,
			secondary: entity.EnvironmentDev,
			wantClass: "env-split-production-dev",
			wantSplit: true,
		},
		{
			name:      "matching tiers collapse",
			primary:   entity.EnvironmentUAT,
			secondary: entity.EnvironmentUAT,
			wantClass: "env-border-uat",
		},
		{
			name:      "unknown secondary is ignored",
			primary:   entity.EnvironmentTest,
			secondary: entity.Environment("Sandbox"),
			wantClass: "env-border-test",
		},
		{name: "unknown primary clears", primary: entity.Environment("Sandbox"), wantClass: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decoration.Compute(tt.primary, tt.secondary)
			assert.Equal(t, tt.wantClass, got.Class)
			assert.Equal(t, tt.wantSplit, got.Split)
			assert.Equal(t, tt.wantClass == "", got.IsZero())
		})
	}
}

func TestAllClasses_ContainsEveryComputedClass(t *testing.T) {
	all := decoration.AllClasses()
	assert.Len(t, all, len(entity.Environments)*len(entity.Environments))

	for _, p := range entity.Environments {
		for _, s := range entity.Environments {
			class := decoration.Compute(p, s).Class
			assert.Contains(t, all, class)
			assert.True(t, decoration.IsTierClass(class))
		}
	}
	assert.False(t, decoration.IsTierClass("active"))
}
