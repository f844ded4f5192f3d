package dataprocessing

import "vitalscli/pkg/contracts/domain"

// Classify labels a reading Critical when either biomarker falls outside its bounds
func Classify(heartRate, oxygenLevel float64, t domain.Thresholds) domain.Status {
	if !t.HeartRate.Contains(heartRate) || !t.OxygenLevel.Contains(oxygenLevel) {
		return domain.StatusCritical
	}
	return domain.StatusNormal
}
