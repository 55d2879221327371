package entities

// StatusEffect is a temporary condition on an entity. Each active effect
// maps to a remaining-duration count in rounds; the registry decrements
// durations at the end of every resolution round.
type StatusEffect string

// Status effects
const (
	// StatusPoisoned deals damage each round when durations tick.
	StatusPoisoned StatusEffect = "poisoned"
	// StatusShielded halves incoming damage.
	StatusShielded StatusEffect = "shielded"
	// StatusFocused raises the holder's critical-hit chance.
	StatusFocused StatusEffect = "focused"
	// StatusBlinded lowers the holder's critical-hit chance.
	StatusBlinded StatusEffect = "blinded"
	// StatusVenomous makes the holder's hits apply poison.
	StatusVenomous StatusEffect = "venomous"
	// StatusHasted raises the holder's effective speed for turn order.
	StatusHasted StatusEffect = "hasted"
)

// StatusEffects lists the known effects in deterministic order
var StatusEffects = []StatusEffect{
	StatusPoisoned,
	StatusShielded,
	StatusFocused,
	StatusBlinded,
	StatusVenomous,
	StatusHasted,
}

// Valid reports whether the effect is a known status
func (s StatusEffect) Valid() bool {
	for _, known := range StatusEffects {
		if s == known {
			return true
		}
	}
	return false
}
