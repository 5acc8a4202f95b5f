package vitals

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
	"vitalboard.xyz/vitals-telemetry-service/pkg/models"
)

// MeasurementVitals is the measurement submitted points are written under.
const MeasurementVitals = "vitals"

func (v *Vitals) latestParams() map[string]string {
	return map[string]string{"bucket": v.Endpoint.Bucket()}
}

func (v *Vitals) getLatest() models.VitalsRecord {
	table, err := v.execute(TemplateLatestVitals, v.latestParams())
	if err != nil || table.Empty() {
		// Endpoint failure or nothing stored yet: the full default set
		// keeps the editable state usable.
		return models.DefaultVitals()
	}

	row, _ := table.Last()
	return models.NewVitalsRecordFromRow(row, parseRowTime(row))
}

func (v *Vitals) getLatestFresh() models.VitalsRecord {
	v.Cache.Invalidate(CacheKey(TemplateLatestVitals, v.latestParams()))
	return v.getLatest()
}

func (v *Vitals) save(sessionID string, candidate models.VitalsRecord, changes models.ChangeSet) error {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryWrite),
	)

	changed := changes.Changed()
	if len(changed) == 0 {
		// Submitting without edits is always safe: no network effect.
		logger.Info("No vitals have been modified, nothing to save",
			zap.String("session_id", sessionID))
		return nil
	}

	point := influx.Point{
		Measurement: MeasurementVitals,
		Timestamp:   time.Now(),
	}
	written := make(map[models.Metric]float64, len(changed))
	for _, m := range changed {
		value := candidate.Field(m)
		written[m] = value
		point.Fields = append(point.Fields, influx.Field{
			Key:     string(m),
			Value:   value,
			Integer: models.IsIntegerMetric(m),
		})
	}

	if err := v.Endpoint.WritePoint(point); err != nil {
		logger.Error("Error saving vitals",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return err
	}

	logger.Info("Vitals saved",
		zap.String("session_id", sessionID),
		zap.Reflect("fields", written))

	v.journal(sessionID, point.Timestamp, written)
	return nil
}

// journal records an acknowledged submit locally. The point is already
// durable on the endpoint, so a journal failure is only logged.
func (v *Vitals) journal(sessionID string, ts time.Time, written map[models.Metric]float64) {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryJournal),
	)

	fields, err := json.Marshal(written)
	if err != nil {
		logger.Error("Error encoding journal fields", zap.Error(err))
		return
	}

	entry := models.JournalEntry{
		SessionID: sessionID,
		Timestamp: ts,
		Fields:    string(fields),
	}
	if err := v.Db.Conn.Create(&entry).Error; err != nil {
		logger.Error("Error writing journal entry", zap.Error(err))
		return
	}

	logger.Info("Journal entry written", zap.Uint("entry_id", entry.ID))
}

func (v *Vitals) listJournal(sessionID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := v.Db.Conn.
		Where("session_id = ?", sessionID).
		Order("timestamp desc").
		Find(&entries).Error
	return entries, err
}

func (v *Vitals) latestTemperature() (models.TemperatureReading, bool) {
	table, err := v.execute(TemplateLatestTemperature, v.latestParams())
	if err != nil || table.Empty() {
		return models.TemperatureReading{}, false
	}

	row, _ := table.Last()
	raw, ok := row["temperature_biased"]
	if !ok {
		raw, ok = row[string(models.MetricTemperature)]
	}
	if !ok {
		return models.TemperatureReading{}, false
	}

	reading := models.TemperatureReading{MeasuredAt: parseRowTime(row)}
	record := models.NewVitalsRecordFromRow(influx.Row{string(models.MetricTemperature): raw}, reading.MeasuredAt)
	reading.Temperature = record.Temperature
	return reading, true
}

func (v *Vitals) history(start, stop string) (influx.Table, error) {
	return v.execute(TemplateVitalsHistory, map[string]string{
		"bucket": v.Endpoint.Bucket(),
		"start":  start,
		"stop":   stop,
	})
}

func parseRowTime(row influx.Row) time.Time {
	if raw, ok := row["_time"]; ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			return ts
		}
	}
	return time.Now()
}

type IRepoImpl struct {
	vitals *Vitals
}

func (ir *IRepoImpl) GetLatest() models.VitalsRecord {
	return ir.vitals.getLatest()
}

func (ir *IRepoImpl) GetLatestFresh() models.VitalsRecord {
	return ir.vitals.getLatestFresh()
}

func (ir *IRepoImpl) Save(sessionID string, candidate models.VitalsRecord, changes models.ChangeSet) error {
	return ir.vitals.save(sessionID, candidate, changes)
}

func (ir *IRepoImpl) LatestTemperature() (models.TemperatureReading, bool) {
	return ir.vitals.latestTemperature()
}

func (ir *IRepoImpl) History(start, stop string) (influx.Table, error) {
	return ir.vitals.history(start, stop)
}

func (ir *IRepoImpl) ListJournal(sessionID string) ([]models.JournalEntry, error) {
	return ir.vitals.listJournal(sessionID)
}

func (v *Vitals) GetIRepo() IRepo {
	return &IRepoImpl{vitals: v}
}
