package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewVitalsRecordFromRow(t *testing.T) {
	ts := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	record := NewVitalsRecordFromRow(map[string]string{
		"temperature":       "98.2",
		"systolic":          "130",
		"diastolic":         "70",
		"heart_rate":        "61",
		"respiration_rate":  "14",
		"oxygen_saturation": "97",
	}, ts)

	assert.Equal(t, 98.2, record.Temperature)
	assert.Equal(t, 130, record.Systolic)
	assert.Equal(t, 70, record.Diastolic)
	assert.Equal(t, 61, record.HeartRate)
	assert.Equal(t, 14, record.RespirationRate)
	assert.Equal(t, 97, record.OxygenSaturation)
	assert.Equal(t, ts, record.Timestamp)
}

func TestNewVitalsRecordFromRow_MissingFieldGetsDefault(t *testing.T) {
	record := NewVitalsRecordFromRow(map[string]string{
		"temperature": "98.2",
		"systolic":    "130",
		"diastolic":   "70",
	}, time.Now())

	assert.Equal(t, 55, record.HeartRate)
	assert.Equal(t, 12, record.RespirationRate)
	assert.Equal(t, 95, record.OxygenSaturation)
}

func TestNewVitalsRecordFromRow_BadValuesGetDefaults(t *testing.T) {
	cases := []struct {
		name string
		row  map[string]string
	}{
		{"non-numeric", map[string]string{"temperature": "hot", "heart_rate": "n/a"}},
		{"out of bounds low", map[string]string{"temperature": "42.0", "heart_rate": "-5"}},
		{"out of bounds high", map[string]string{"temperature": "300", "heart_rate": "900"}},
		{"not finite", map[string]string{"temperature": "NaN", "heart_rate": "+Inf"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := NewVitalsRecordFromRow(tc.row, time.Now())
			assert.Equal(t, 97.5, record.Temperature)
			assert.Equal(t, 55, record.HeartRate)
		})
	}
}

func TestNormalize_DiastolicClamp(t *testing.T) {
	record := NewVitalsRecordFromRow(map[string]string{
		"systolic":  "120",
		"diastolic": "130",
	}, time.Now())

	assert.Equal(t, 120, record.Systolic)
	assert.Equal(t, 100, record.Diastolic)
}

func TestDefaultVitals(t *testing.T) {
	record := DefaultVitals()

	assert.Equal(t, 97.5, record.Temperature)
	assert.Equal(t, 125, record.Systolic)
	assert.Equal(t, 60, record.Diastolic)
	assert.Equal(t, 55, record.HeartRate)
	assert.Equal(t, 12, record.RespirationRate)
	assert.Equal(t, 95, record.OxygenSaturation)
	assert.Less(t, record.Diastolic, record.Systolic)
}

func TestChangeSet(t *testing.T) {
	changes := NewChangeSet()
	assert.False(t, changes.Any())
	assert.Empty(t, changes.Changed())

	changes.Mark(MetricTemperature)
	assert.True(t, changes.Any())
	assert.Equal(t, []Metric{MetricTemperature}, changes.Changed())

	changes.Reset()
	assert.False(t, changes.Any())
}

func TestChangeSet_BloodPressureAlias(t *testing.T) {
	changes := NewChangeSet()
	changes.Mark(MetricBloodPressure)

	assert.Equal(t, []Metric{MetricSystolic, MetricDiastolic}, changes.Changed())
}

func TestFieldRoundTrip(t *testing.T) {
	record := DefaultVitals()

	for _, m := range AllMetrics() {
		record.SetField(m, record.Field(m))
	}
	assert.Equal(t, DefaultVitals().Temperature, record.Temperature)
	assert.Equal(t, DefaultVitals().HeartRate, record.HeartRate)
}
