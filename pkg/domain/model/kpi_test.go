package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
)

func TestKPIMetricsValidate(t *testing.T) {
	valid := func() *model.KPIMetrics {
		return &model.KPIMetrics{
			TotalPatients:         727,
			ICUOccupancy:          0.75,
			WardOccupancy:         0.76,
			AlertCount:            3,
			SurgeConfidence:       0.82,
			CriticalHospitalCount: 2,
		}
	}

	t.Run("valid metrics pass", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("negative counts fail", func(t *testing.T) {
		metrics := valid()
		metrics.TotalPatients = -1
		gt.Error(t, metrics.Validate())

		metrics = valid()
		metrics.AlertCount = -1
		gt.Error(t, metrics.Validate())

		metrics = valid()
		metrics.CriticalHospitalCount = -1
		gt.Error(t, metrics.Validate())
	})

	t.Run("fractions outside the unit interval fail", func(t *testing.T) {
		metrics := valid()
		metrics.ICUOccupancy = 1.2
		gt.Error(t, metrics.Validate())

		metrics = valid()
		metrics.WardOccupancy = -0.1
		gt.Error(t, metrics.Validate())

		metrics = valid()
		metrics.SurgeConfidence = 1.5
		gt.Error(t, metrics.Validate())
	})
}
