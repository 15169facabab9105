package engine

import "context"

// Entitlements is the monetization collaborator. The engine only ever
// reads it; purchase flow lives outside this module.
type Entitlements interface {
	HasRemoveAds(ctx context.Context) bool
}

// StaticEntitlements is a fixed-value implementation.
type StaticEntitlements struct {
	removeAds bool
}

// NewStaticEntitlements creates a static entitlement source.
func NewStaticEntitlements(removeAds bool) *StaticEntitlements {
	return &StaticEntitlements{removeAds: removeAds}
}

// HasRemoveAds reports the remove-ads entitlement.
func (e *StaticEntitlements) HasRemoveAds(_ context.Context) bool {
	return e.removeAds
}
