package vitals

import (
	"time"

	"go.uber.org/zap"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
)

// Stored template names. Adding a query is adding a file under the
// template directory.
const (
	TemplateLatestVitals      = "latest_vitals.flux"
	TemplateLatestTemperature = "latest_temperature.flux"
	TemplateVitalsHistory     = "vitals_history.flux"
)

func (v *Vitals) execute(name string, params map[string]string) (influx.Table, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	key := CacheKey(name, params)
	table, hit, err := v.Cache.GetOrFetch(key, func() (influx.Table, error) {
		template, err := v.Store.Load(name)
		if err != nil {
			// Missing template is non-fatal: the query fails cleanly and
			// the caller degrades to an empty result.
			return influx.Table{}, err
		}

		script, err := template.Resolve(params)
		if err != nil {
			// Unresolved placeholders must never reach the endpoint.
			return influx.Table{}, err
		}

		return v.Endpoint.Query(script)
	})
	if err != nil {
		logger.Warn("Query failed, surfacing empty result",
			zap.String("template", name),
			zap.Error(err))
		return influx.Table{}, err
	}

	logger.Debug("Query served",
		zap.String("template", name),
		zap.Bool("cache_hit", hit),
		zap.Int("row_count", len(table.Rows)))
	return table, nil
}

func (v *Vitals) executeFresh(name string, params map[string]string) (influx.Table, error) {
	v.Cache.Invalidate(CacheKey(name, params))
	return v.execute(name, params)
}

type IQueryImpl struct {
	vitals *Vitals
}

func (iq *IQueryImpl) Execute(name string, params map[string]string) (influx.Table, error) {
	return iq.vitals.execute(name, params)
}

func (iq *IQueryImpl) ExecuteFresh(name string, params map[string]string) (influx.Table, error) {
	return iq.vitals.executeFresh(name, params)
}

func (iq *IQueryImpl) Invalidate(name string, params map[string]string) {
	iq.vitals.Cache.Invalidate(CacheKey(name, params))
}

func (iq *IQueryImpl) EntryAge(name string, params map[string]string) (time.Duration, bool) {
	return iq.vitals.Cache.Age(CacheKey(name, params))
}

func (v *Vitals) GetIQuery() IQuery {
	return &IQueryImpl{vitals: v}
}
