package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// CSPConsent records that the user accepted a tool's permission exceptions.
type CSPConsent struct {
	ToolID ToolID
	// Fingerprint identifies the exception set that was accepted.
	Fingerprint string
	GrantedAt   int64 // Unix timestamp in seconds
}

// Covers reports whether the consent still applies to tool's current exceptions.
func (c *CSPConsent) Covers(tool *Tool) bool {
	if c == nil || tool == nil || c.ToolID != tool.ID {
		return false
	}
	return c.Fingerprint == FingerprintCSP(tool.CSPExceptions)
}

// FingerprintCSP hashes an exception set independently of declaration order.
func FingerprintCSP(exceptions []CSPException) string {
	lines := make([]string, 0, len(exceptions))
	for _, ex := range exceptions {
		sources := append([]string(nil), ex.Sources...)
		sort.Strings(sources)
		lines = append(lines, strings.ToLower(ex.Directive)+" "+strings.Join(sources, " "))
	}
	sort.Strings(lines)
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:8])
}
