package entity

import "time"

// ConnectionBinding is the derived authentication view of an instance's
// connection slots. It is computed on demand and never stored.
type ConnectionBinding struct {
	Primary                ConnectionID
	Secondary              ConnectionID
	PrimaryAuthenticated   bool
	SecondaryAuthenticated bool
	SecondaryRequired      bool
}

// ResolveBinding derives the binding of primary/secondary against the given
// connection list at time now.
func ResolveBinding(primary, secondary ConnectionID, secondaryRequired bool, conns []*Connection, now time.Time) ConnectionBinding {
	b := ConnectionBinding{
		Primary:           primary,
		Secondary:         secondary,
		SecondaryRequired: secondaryRequired,
	}
	if primary != "" {
		b.PrimaryAuthenticated = FindConnection(conns, primary).IsAuthenticated(now)
	}
	if secondary != "" {
		b.SecondaryAuthenticated = FindConnection(conns, secondary).IsAuthenticated(now)
	}
	return b
}

// Usable reports whether every required or bound slot is authenticated.
func (b ConnectionBinding) Usable() bool {
	if b.Primary == "" || !b.PrimaryAuthenticated {
		return false
	}
	if b.SecondaryRequired && b.Secondary == "" {
		return false
	}
	if b.Secondary != "" && !b.SecondaryAuthenticated {
		return false
	}
	return true
}
