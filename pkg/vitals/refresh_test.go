package vitals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
	_ "vitalboard.xyz/vitals-telemetry-service/pkg/testing"
)

func TestRefreshOnce_PopulatesMissingEntry(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(latestTable(map[string]string{"temperature": "98.2"}), nil).
		Times(1)

	refresher := NewRefresher(vitalsObj, time.Second, DefaultStaleAfter)
	refresher.refreshOnce()

	// The next render is served from the pre-warmed cache.
	record := vitalsObj.Repo.GetLatest()
	assert.Equal(t, 98.2, record.Temperature)
}

func TestRefreshOnce_FreshEntryLeftAlone(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(influx.Table{}, nil).
		Times(1)

	_ = vitalsObj.Repo.GetLatest()

	refresher := NewRefresher(vitalsObj, time.Second, DefaultStaleAfter)
	refresher.refreshOnce()
}

func TestRefreshOnce_StaleEntryRefetched(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(influx.Table{}, nil).
		Times(2)

	_ = vitalsObj.Repo.GetLatest()

	// Anything older than a zero staleness threshold counts as stale.
	refresher := &Refresher{vitals: vitalsObj, interval: time.Second, staleAfter: time.Nanosecond}
	time.Sleep(time.Millisecond)
	refresher.refreshOnce()
}

func TestRefreshOnce_FailureSwallowed(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		Return(influx.Table{}, errors.New("unreachable")).
		Times(1)

	refresher := NewRefresher(vitalsObj, time.Second, DefaultStaleAfter)
	assert.NotPanics(t, func() { refresher.refreshOnce() })
}

func TestRefresherStart_StopsOnCancel(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, vitalsObj, mockEndpoint := GetMockVitalsWithMemorySqliteDialector(t, time.Minute)
	defer ctrl.Finish()

	fetched := make(chan struct{}, 1024)
	mockEndpoint.
		EXPECT().
		Query(gomock.Any()).
		DoAndReturn(func(string) (influx.Table, error) {
			fetched <- struct{}{}
			return latestTable(map[string]string{"temperature": "98.2"}), nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())

	refresher := &Refresher{vitals: vitalsObj, interval: 5 * time.Millisecond, staleAfter: time.Nanosecond}
	refresher.Start(ctx)

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the refresher to pre-warm the cache")
	}

	cancel()

	// Drain anything in flight, then verify the loop stopped.
	time.Sleep(20 * time.Millisecond)
	for len(fetched) > 0 {
		<-fetched
	}
	select {
	case <-fetched:
		t.Fatal("refresher kept running after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}
