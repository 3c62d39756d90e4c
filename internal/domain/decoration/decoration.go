// Package decoration derives environment tier styling from connection bindings.
package decoration

import (
	"strings"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ClassPrefix prefixes every tier class so they can be cleared as a group.
const ClassPrefix = "env-"

// Decoration is the tier styling of one instance.
type Decoration struct {
	// Class is the CSS class to apply, empty when no connection is bound.
	Class     string
	Primary   entity.Environment
	Secondary entity.Environment
	Split     bool
}

// IsZero reports whether no tier class applies.
func (d Decoration) IsZero() bool {
	return d.Class == ""
}

// Compute returns the tier styling for a primary and optional secondary
// environment. Differing tiers produce an order-sensitive split class,
// matching tiers collapse to the single-tier class.
func Compute(primary, secondary entity.Environment) Decoration {
	if !primary.Valid() {
		return Decoration{}
	}
	if !secondary.Valid() || secondary == primary {
		return Decoration{
			Class:   SingleClass(primary),
			Primary: primary,
		}
	}
	return Decoration{
		Class:     SplitClass(primary, secondary),
		Primary:   primary,
		Secondary: secondary,
		Split:     true,
	}
}

// SingleClass is the solid border class of a tier.
func SingleClass(env entity.Environment) string {
	return ClassPrefix + "border-" + env.Slug()
}

// SplitClass is the split border class of a primary/secondary tier pair.
func SplitClass(primary, secondary entity.Environment) string {
	return ClassPrefix + "split-" + primary.Slug() + "-" + secondary.Slug()
}

// IsTierClass reports whether class was produced by this package.
func IsTierClass(class string) bool {
	return strings.HasPrefix(class, ClassPrefix+"border-") || strings.HasPrefix(class, ClassPrefix+"split-")
}

// AllClasses lists every class Compute can return.
func AllClasses() []string {
	classes := make([]string, 0, len(entity.Environments)*len(entity.Environments))
	for _, p := range entity.Environments {
		classes = append(classes, SingleClass(p))
		for _, s := range entity.Environments {
			if s != p {
				classes = append(classes, SplitClass(p, s))
			}
		}
	}
	return classes
}
