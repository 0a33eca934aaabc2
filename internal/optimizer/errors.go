package optimizer

import "errors"

var (
	// ErrEmptyPool is returned when the gem pool has nothing to rank.
	ErrEmptyPool = errors.New("gem pool is empty")
	// ErrNoEnchantments is returned when no enchantment is pooled for a slot.
	ErrNoEnchantments = errors.New("no enchantments pooled for slot")
	// ErrNoFallbackGem is returned when the universal gem tops the ranking,
	// is not allowed, and nothing ranks below it.
	ErrNoFallbackGem = errors.New("no gem to fall back to from universal gem")
	// ErrNoMode is returned by Run when neither gems nor enchantments are enabled.
	ErrNoMode = errors.New("neither gems nor enchantments enabled")
)
