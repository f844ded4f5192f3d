package domain

// Bounds is an inclusive reference range. A nil side is unbounded.
type Bounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies within the bounds
func (b Bounds) Contains(v float64) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// Thresholds holds the critical bounds for each screened biomarker
type Thresholds struct {
	HeartRate   Bounds `json:"heart_rate"`
	OxygenLevel Bounds `json:"oxygen_level"`
}

// DefaultThresholds returns the screening thresholds:
// heart rate within [60, 100] bpm and oxygen saturation of at least 95%.
// Each call returns a fresh value so callers cannot alter the shared ranges.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HeartRate:   Bounds{Min: Float(60), Max: Float(100)},
		OxygenLevel: Bounds{Min: Float(95)},
	}
}
