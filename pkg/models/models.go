package models

import (
	"math"
	"strconv"
	"time"
)

// Metric identifies one tracked vital. The string values double as the
// field names stored on the time-series endpoint and as the stable keys
// the editable-session boundary is addressed by.
type Metric string

const (
	MetricTemperature      Metric = "temperature"
	MetricSystolic         Metric = "systolic"
	MetricDiastolic        Metric = "diastolic"
	MetricHeartRate        Metric = "heart_rate"
	MetricRespirationRate  Metric = "respiration_rate"
	MetricOxygenSaturation Metric = "oxygen_saturation"

	// MetricBloodPressure is an alias accepted on the edit boundary; the
	// blood-pressure slider carries both bounds, so marking it dirty marks
	// systolic and diastolic together.
	MetricBloodPressure Metric = "blood_pressure"
)

// AllMetrics returns the tracked metrics in their canonical order.
func AllMetrics() []Metric {
	return []Metric{
		MetricTemperature,
		MetricSystolic,
		MetricDiastolic,
		MetricHeartRate,
		MetricRespirationRate,
		MetricOxygenSaturation,
	}
}

// IsIntegerMetric reports whether the metric is stored as an integer field.
// Temperature is the only real-valued vital.
func IsIntegerMetric(m Metric) bool {
	return m != MetricTemperature
}

type metricBound struct {
	Min float64
	Max float64
}

// Per-field defaults and sane physiological bounds. A loaded value that is
// missing, non-numeric or outside its bound is replaced by the default so a
// corrupt row never produces unusable editable state.
var (
	metricDefaults = map[Metric]float64{
		MetricTemperature:      97.5,
		MetricSystolic:         125,
		MetricDiastolic:        60,
		MetricHeartRate:        55,
		MetricRespirationRate:  12,
		MetricOxygenSaturation: 95,
	}

	metricBounds = map[Metric]metricBound{
		MetricTemperature:      {Min: 80, Max: 120},
		MetricSystolic:         {Min: 40, Max: 260},
		MetricDiastolic:        {Min: 20, Max: 200},
		MetricHeartRate:        {Min: 0, Max: 300},
		MetricRespirationRate:  {Min: 0, Max: 60},
		MetricOxygenSaturation: {Min: 0, Max: 100},
	}
)

// MetricDefault returns the documented default for a metric.
func MetricDefault(m Metric) float64 {
	return metricDefaults[m]
}

// VitalsRecord is one timestamped bundle of vital values. Records are
// immutable once written; a new submit always produces a new point.
type VitalsRecord struct {
	Timestamp        time.Time `json:"timestamp"`
	Temperature      float64   `json:"temperature"`
	Systolic         int       `json:"systolic"`
	Diastolic        int       `json:"diastolic"`
	HeartRate        int       `json:"heart_rate"`
	RespirationRate  int       `json:"respiration_rate"`
	OxygenSaturation int       `json:"oxygen_saturation"`
}

// DefaultVitals returns a record carrying every documented default.
func DefaultVitals() VitalsRecord {
	r := VitalsRecord{Timestamp: time.Now()}
	for _, m := range AllMetrics() {
		r.SetField(m, metricDefaults[m])
	}
	return r
}

// NewVitalsRecordFromRow builds a record from the raw column values of one
// endpoint row, applying the default and bounds policy per field and then
// normalizing blood pressure. Unknown or broken columns never propagate.
func NewVitalsRecordFromRow(row map[string]string, ts time.Time) VitalsRecord {
	r := VitalsRecord{Timestamp: ts}
	for _, m := range AllMetrics() {
		r.SetField(m, sanitizeField(m, row[string(m)]))
	}
	r.Normalize()
	return r
}

func sanitizeField(m Metric, raw string) float64 {
	if raw == "" {
		return metricDefaults[m]
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return metricDefaults[m]
	}
	b := metricBounds[m]
	if v < b.Min || v > b.Max {
		return metricDefaults[m]
	}
	return v
}

// Normalize enforces diastolic < systolic, clamping diastolic to
// systolic-20 when a loaded record violates it.
func (r *VitalsRecord) Normalize() {
	if r.Diastolic >= r.Systolic {
		r.Diastolic = r.Systolic - 20
	}
}

// Field returns the value of one metric as float64.
func (r VitalsRecord) Field(m Metric) float64 {
	switch m {
	case MetricTemperature:
		return r.Temperature
	case MetricSystolic:
		return float64(r.Systolic)
	case MetricDiastolic:
		return float64(r.Diastolic)
	case MetricHeartRate:
		return float64(r.HeartRate)
	case MetricRespirationRate:
		return float64(r.RespirationRate)
	case MetricOxygenSaturation:
		return float64(r.OxygenSaturation)
	}
	return 0
}

// SetField assigns one metric value, rounding integer-valued vitals.
func (r *VitalsRecord) SetField(m Metric, v float64) {
	switch m {
	case MetricTemperature:
		r.Temperature = v
	case MetricSystolic:
		r.Systolic = int(math.Round(v))
	case MetricDiastolic:
		r.Diastolic = int(math.Round(v))
	case MetricHeartRate:
		r.HeartRate = int(math.Round(v))
	case MetricRespirationRate:
		r.RespirationRate = int(math.Round(v))
	case MetricOxygenSaturation:
		r.OxygenSaturation = int(math.Round(v))
	}
}

// ChangeSet tracks which fields diverge from the loaded baseline. It is
// consulted at submit time to scope the write and reset after a successful
// load or save.
type ChangeSet map[Metric]bool

func NewChangeSet() ChangeSet {
	c := make(ChangeSet, len(AllMetrics()))
	c.Reset()
	return c
}

// Mark flags a metric as edited. The blood_pressure alias marks both
// pressure bounds.
func (c ChangeSet) Mark(m Metric) {
	if m == MetricBloodPressure {
		c[MetricSystolic] = true
		c[MetricDiastolic] = true
		return
	}
	c[m] = true
}

// Changed returns the dirty metrics in canonical order.
func (c ChangeSet) Changed() []Metric {
	var changed []Metric
	for _, m := range AllMetrics() {
		if c[m] {
			changed = append(changed, m)
		}
	}
	return changed
}

func (c ChangeSet) Any() bool {
	for _, m := range AllMetrics() {
		if c[m] {
			return true
		}
	}
	return false
}

// Reset clears every flag back to unedited.
func (c ChangeSet) Reset() {
	for _, m := range AllMetrics() {
		c[m] = false
	}
}

// Session is a snapshot of one editable session: the loaded baseline and
// which fields have been edited since.
type Session struct {
	ID       string          `json:"id"`
	Baseline VitalsRecord    `json:"baseline"`
	Changed  map[Metric]bool `json:"changed"`
	Loaded   bool            `json:"loaded"`
}

// TemperatureReading is the latest temperature on record, as the home page
// shows it.
type TemperatureReading struct {
	Temperature float64   `json:"temperature"`
	MeasuredAt  time.Time `json:"measured_at"`
}

// JournalEntry is one acknowledged submit recorded in the local journal.
type JournalEntry struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"index"`
	Timestamp time.Time
	Fields    string // written subset as JSON, e.g. {"temperature":97.5}
}
