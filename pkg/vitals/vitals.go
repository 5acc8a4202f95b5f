package vitals

import (
	"sync"
	"time"

	"vitalboard.xyz/vitals-telemetry-service/pkg/db"
	"vitalboard.xyz/vitals-telemetry-service/pkg/flux"
	"vitalboard.xyz/vitals-telemetry-service/pkg/influx"
	"vitalboard.xyz/vitals-telemetry-service/pkg/models"
)

// IEndpoint is the time-series endpoint boundary: it executes resolved
// query strings and accepts single timestamped points.
type IEndpoint interface {
	Query(script string) (influx.Table, error)
	WritePoint(p influx.Point) error
	Bucket() string
}

// IQuery runs named templates through the TTL cache.
type IQuery interface {
	Execute(name string, params map[string]string) (influx.Table, error)
	ExecuteFresh(name string, params map[string]string) (influx.Table, error)
	Invalidate(name string, params map[string]string)
	EntryAge(name string, params map[string]string) (time.Duration, bool)
}

// IRepo is the vitals read/write access layer.
type IRepo interface {
	GetLatest() models.VitalsRecord
	GetLatestFresh() models.VitalsRecord
	Save(sessionID string, candidate models.VitalsRecord, changes models.ChangeSet) error
	LatestTemperature() (models.TemperatureReading, bool)
	History(start, stop string) (influx.Table, error)
	ListJournal(sessionID string) ([]models.JournalEntry, error)
}

// ISession owns the per-session editable state and its ChangeSet.
type ISession interface {
	Load(id string) models.Session
	MarkChanged(id string, metric models.Metric) models.Session
	Save(id string, candidate models.VitalsRecord) (models.Session, error)
	Reset(id string) models.Session
}

// Vitals wires the access layer together: the template store and endpoint
// underneath, the journal database beside, and the service interfaces on top.
type Vitals struct {
	Db       db.DB
	Store    *flux.Store
	Endpoint IEndpoint
	Cache    *Cache

	Query   IQuery
	Repo    IRepo
	Session ISession

	sessions     *sessionStore
	sessionsOnce sync.Once
}

type ServiceOpts struct {
	Query   IQuery
	Repo    IRepo
	Session ISession
}

func (v *Vitals) WithServices(opts ServiceOpts) *Vitals {
	if opts.Query != nil {
		v.Query = opts.Query
	}
	if opts.Repo != nil {
		v.Repo = opts.Repo
	}
	if opts.Session != nil {
		v.Session = opts.Session
	}
	return v
}
