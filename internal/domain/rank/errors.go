package rank

import "errors"

// Sentinel error kinds for rule set validation and progress lookups.
var (
	ErrEmptyRuleSet   = errors.New("rule set has no rules")
	ErrInvalidTier    = errors.New("invalid tier")
	ErrDuplicateTier  = errors.New("duplicate tier in rule set")
	ErrNonMonotonic   = errors.New("thresholds are not monotonic")
	ErrTierGap        = errors.New("rule set tiers are not contiguous")
	ErrCorruptRuleSet = errors.New("corrupt rule set")
)
