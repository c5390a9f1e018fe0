// Package plan maps subscription tiers to the modules they unlock. Tier
// values stored in the database are raw strings accumulated over years of
// billing changes; everything here normalizes to one of four canonical tiers
// before any access decision is made.
package plan

import "strings"

// Tier is a canonical subscription tier.
type Tier string

const (
	TierFree         Tier = "free"
	TierBusiness     Tier = "business"
	TierElitePremium Tier = "elite_premium"
	TierEnterprise   Tier = "enterprise"
)

// IsValid checks if the tier is one of the four canonical values.
func (t Tier) IsValid() bool {
	switch t {
	case TierFree, TierBusiness, TierElitePremium, TierEnterprise:
		return true
	}
	return false
}

// String returns the string representation of the tier.
func (t Tier) String() string {
	return string(t)
}

// IsPaid reports whether the tier is anything above free.
func (t Tier) IsPaid() bool {
	return t.IsValid() && t != TierFree
}

// tierAliases maps legacy and marketing tier names from old database rows to
// canonical tiers. Canonical names map to themselves so NormalizeTier is a
// single lookup.
var tierAliases = map[string]Tier{
	"free":          TierFree,
	"trial":         TierFree,
	"business":      TierBusiness,
	"starter":       TierBusiness,
	"basic":         TierBusiness,
	"elite_premium": TierElitePremium,
	"elite":         TierElitePremium,
	"premium":       TierElitePremium,
	"professional":  TierElitePremium,
	"pro":           TierElitePremium,
	"enterprise":    TierEnterprise,
}

// NormalizeTier maps any raw tier string to a canonical tier. It is total:
// unknown or empty input normalizes to free. Under-privileging on bad data is
// safe; over-privileging is not, so the default must never be a paid tier.
func NormalizeTier(raw string) Tier {
	if t, ok := tierAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return t
	}
	return TierFree
}
