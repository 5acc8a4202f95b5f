package vitals

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"vitalboard.xyz/vitals-telemetry-service/pkg/db"
	"vitalboard.xyz/vitals-telemetry-service/pkg/flux"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
	"vitalboard.xyz/vitals-telemetry-service/pkg/vitals/mocks"
)

func GetMockVitalsWithMemorySqliteDialector(t *testing.T, ttl time.Duration) (
	*gomock.Controller,
	*Vitals,
	*mocks.MockIEndpoint,
) {
	ctrl := gomock.NewController(t)

	mockEndpoint := mocks.NewMockIEndpoint(ctrl)
	mockEndpoint.EXPECT().Bucket().Return("thermometer").AnyTimes()

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	vitalsInstance := &Vitals{
		Db:       *dbInstance,
		Store:    flux.NewStore("templates/flux"),
		Endpoint: mockEndpoint,
		Cache:    NewCache(ttl),
	}
	vitalsInstance.WithServices(ServiceOpts{
		Query:   vitalsInstance.GetIQuery(),
		Repo:    vitalsInstance.GetIRepo(),
		Session: vitalsInstance.GetISession(),
	})

	return ctrl, vitalsInstance, mockEndpoint
}

// latestTable builds the one-row table the latest-vitals query yields.
func latestTable(fields map[string]string) influx.Table {
	row := influx.Row{"_time": "2026-08-26T10:00:00Z"}
	columns := []string{"_time"}
	for k, v := range fields {
		row[k] = v
		columns = append(columns, k)
	}
	return influx.Table{Columns: columns, Rows: []influx.Row{row}}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
