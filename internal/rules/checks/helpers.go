package checks

import "galeracheck/internal/snapshot"

// prevNumeric reads the previous sample's numeric value, defaulting to 0
// when the variable was never observed before.
func prevNumeric(prev *snapshot.Store, name string) float64 {
	if v, ok := prev.Get(name); ok && v.IsNumeric() {
		return v.Float()
	}
	return 0
}
