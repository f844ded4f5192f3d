package domain

// Column names of the sensor readings table
const (
	ColumnHeartRate   = "heart_rate"
	ColumnOxygenLevel = "oxygen_level"
	ColumnStatus      = "status"
)

// Status is the screening label assigned to a processed reading
type Status string

const (
	StatusCritical Status = "Critical"
	StatusNormal   Status = "Normal"
)

// IsValid reports whether s is one of the known labels
func (s Status) IsValid() bool {
	return s == StatusCritical || s == StatusNormal
}

// Reading is a single row of biomarker measurements.
// A nil measurement means the sensor reported nothing for that row.
type Reading struct {
	HeartRate   *float64 `json:"heart_rate" validate:"omitempty,gt=0,lte=400"`
	OxygenLevel *float64 `json:"oxygen_level" validate:"omitempty,gte=0,lte=100"`
	Status      Status   `json:"status,omitempty" validate:"status"`
}

// Float returns a pointer to v, for building readings in code
func Float(v float64) *float64 {
	return &v
}
