package model

import "github.com/m-mizutani/goerr/v2"

// KPIMetrics holds high-level dashboard metrics. Fractions are
// normalized to [0, 1].
type KPIMetrics struct {
	TotalPatients         int     `json:"total_patients"`
	ICUOccupancy          float64 `json:"icu_occupancy"`
	WardOccupancy         float64 `json:"ward_occupancy"`
	AlertCount            int     `json:"alert_count"`
	SurgeConfidence       float64 `json:"surge_confidence"`
	CriticalHospitalCount int     `json:"critical_hospital_count"`
}

// Validate checks counts are non-negative and fractions are within [0, 1]
func (k *KPIMetrics) Validate() error {
	if k.TotalPatients < 0 {
		return goerr.New("total_patients must be non-negative", goerr.V("total_patients", k.TotalPatients))
	}
	if k.ICUOccupancy < 0.0 || k.ICUOccupancy > 1.0 {
		return goerr.New("icu_occupancy out of range", goerr.V("icu_occupancy", k.ICUOccupancy))
	}
	if k.WardOccupancy < 0.0 || k.WardOccupancy > 1.0 {
		return goerr.New("ward_occupancy out of range", goerr.V("ward_occupancy", k.WardOccupancy))
	}
	if k.AlertCount < 0 {
		return goerr.New("alert_count must be non-negative", goerr.V("alert_count", k.AlertCount))
	}
	if k.SurgeConfidence < 0.0 || k.SurgeConfidence > 1.0 {
		return goerr.New("surge_confidence out of range", goerr.V("surge_confidence", k.SurgeConfidence))
	}
	if k.CriticalHospitalCount < 0 {
		return goerr.New("critical_hospital_count must be non-negative", goerr.V("critical_hospital_count", k.CriticalHospitalCount))
	}
	return nil
}
