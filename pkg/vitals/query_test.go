package vitals

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/flux"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
	_ "vitalboard.xyz/vitals-telemetry-service/pkg/testing"
)

func TestExecute_CachedWithinTTL(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(latestTable(map[string]string{"temperature": "98.0"}), nil).
		Times(1)

	params := map[string]string{"bucket": "thermometer"}

	table, err := vitalsObj.Query.Execute(TemplateLatestVitals, params)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)

	// Second call within the TTL must be served from the cache.
	table, err = vitalsObj.Query.Execute(TemplateLatestVitals, params)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestExecute_ResolvedScriptReachesEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	var gotScript string
	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		DoAndReturn(func(script string) (influx.Table, error) {
			gotScript = script
			return influx.Table{}, nil
		}).
		Times(1)

	_, err := vitalsObj.Query.Execute(TemplateVitalsHistory, map[string]string{
		"bucket": "thermometer",
		"start":  "-24h",
		"stop":   "now()",
	})
	require.NoError(t, err)

	assert.Contains(t, gotScript, `from(bucket: "thermometer")`)
	assert.Contains(t, gotScript, "range(start: -24h, stop: now())")
	assert.NotContains(t, gotScript, "${")
}

func TestExecute_MissingTemplate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, _ := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	// No Query expectation: nothing may reach the endpoint.
	_, err := vitalsObj.Query.Execute("no_such.flux", nil)
	assert.ErrorIs(t, err, flux.ErrTemplateNotFound)
}

func TestExecute_MissingParameterFailsBeforeDispatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, _ := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	_, err := vitalsObj.Query.Execute(TemplateVitalsHistory, map[string]string{
		"bucket": "thermometer",
	})
	assert.ErrorIs(t, err, flux.ErrMissingParameter)
}

func TestExecute_EndpointFailureRetriedNextCall(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(influx.Table{}, errors.New("unreachable")).
		Times(2)

	params := map[string]string{"bucket": "thermometer"}

	_, err := vitalsObj.Query.Execute(TemplateLatestVitals, params)
	assert.Error(t, err)

	// Failures are never cached; the next interaction tries again.
	_, err = vitalsObj.Query.Execute(TemplateLatestVitals, params)
	assert.Error(t, err)
}

func TestExecuteFresh_BypassesCache(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(influx.Table{}, nil).
		Times(2)

	params := map[string]string{"bucket": "thermometer"}

	_, err := vitalsObj.Query.Execute(TemplateLatestVitals, params)
	require.NoError(t, err)

	_, err = vitalsObj.Query.ExecuteFresh(TemplateLatestVitals, params)
	require.NoError(t, err)
}

func TestEntryAge(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	params := map[string]string{"bucket": "thermometer"}

	_, found := vitalsObj.Query.EntryAge(TemplateLatestVitals, params)
	assert.False(t, found)

	mockEndpoint.EXPECT().Query(gomock.Any()).Return(influx.Table{}, nil).Times(1)
	_, err := vitalsObj.Query.Execute(TemplateLatestVitals, params)
	require.NoError(t, err)

	age, found := vitalsObj.Query.EntryAge(TemplateLatestVitals, params)
	assert.True(t, found)
	assert.Less(t, age, time.Minute)
}
