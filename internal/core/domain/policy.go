// Package domain contains the core domain models for evaluation caching.
package domain

import "strings"

// SharingPolicy controls whether evaluation contexts handed out for new
// projects pool their caches or start cold.
type SharingPolicy string

const (
	// SharingPolicyShared reuses one context, and therefore one set of caches,
	// across every project that asks for a context.
	SharingPolicyShared SharingPolicy = "shared"
	// SharingPolicyIsolated hands every previously-unseen project a fresh
	// context with empty caches.
	SharingPolicyIsolated SharingPolicy = "isolated"
)

// Valid reports whether the policy is one of the known values.
func (p SharingPolicy) Valid() bool {
	return p == SharingPolicyShared || p == SharingPolicyIsolated
}

// NormalizeSharingPolicy converts a string to a SharingPolicy, defaulting to
// isolated if unknown. Isolated is the safe default: no incidental pooling.
func NormalizeSharingPolicy(s string) SharingPolicy {
	switch strings.ToLower(s) {
	case string(SharingPolicyShared):
		return SharingPolicyShared
	case string(SharingPolicyIsolated):
		return SharingPolicyIsolated
	default:
		return SharingPolicyIsolated
	}
}
