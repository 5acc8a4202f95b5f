package vitals

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/models"
)

type sessionState struct {
	mu       sync.Mutex
	baseline models.VitalsRecord
	changes  models.ChangeSet
	loaded   bool
}

func (s *sessionState) snapshot(id string) models.Session {
	changed := make(map[models.Metric]bool, len(s.changes))
	for _, m := range models.AllMetrics() {
		changed[m] = s.changes[m]
	}
	return models.Session{
		ID:       id,
		Baseline: s.baseline,
		Changed:  changed,
		Loaded:   s.loaded,
	}
}

type sessionStore struct {
	mu     sync.Mutex
	states map[string]*sessionState
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[string]*sessionState)}
}

func (ss *sessionStore) get(id string) *sessionState {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	state, ok := ss.states[id]
	if !ok {
		state = &sessionState{changes: models.NewChangeSet()}
		ss.states[id] = state
	}
	return state
}

func (v *Vitals) sessionStoreRef() *sessionStore {
	v.sessionsOnce.Do(func() {
		v.sessions = newSessionStore()
	})
	return v.sessions
}

func (v *Vitals) loadSession(id string) models.Session {
	state := v.sessionStoreRef().get(id)
	state.mu.Lock()
	defer state.mu.Unlock()

	if !state.loaded {
		state.baseline = v.Repo.GetLatest()
		state.changes.Reset()
		state.loaded = true
	}
	return state.snapshot(id)
}

func (v *Vitals) markChanged(id string, metric models.Metric) models.Session {
	logger := common.GetLoggerWith(
		common.LoggerNameVitalsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySession),
	)

	state := v.sessionStoreRef().get(id)
	state.mu.Lock()
	defer state.mu.Unlock()

	state.changes.Mark(metric)
	logger.Debug("Metric marked changed",
		zap.String("session_id", id),
		zap.String("metric", string(metric)))
	return state.snapshot(id)
}

func (v *Vitals) saveSession(id string, candidate models.VitalsRecord) (models.Session, error) {
	state := v.sessionStoreRef().get(id)
	state.mu.Lock()
	defer state.mu.Unlock()

	if err := v.Repo.Save(id, candidate, state.changes); err != nil {
		// Leave the ChangeSet and baseline intact so the user may retry.
		return state.snapshot(id), err
	}

	candidate.Timestamp = time.Now()
	state.baseline = candidate
	state.changes.Reset()
	state.loaded = true
	return state.snapshot(id), nil
}

func (v *Vitals) resetSession(id string) models.Session {
	state := v.sessionStoreRef().get(id)
	state.mu.Lock()
	defer state.mu.Unlock()

	state.baseline = v.Repo.GetLatestFresh()
	state.changes.Reset()
	state.loaded = true
	return state.snapshot(id)
}

type ISessionImpl struct {
	vitals *Vitals
}

func (is *ISessionImpl) Load(id string) models.Session {
	return is.vitals.loadSession(id)
}

func (is *ISessionImpl) MarkChanged(id string, metric models.Metric) models.Session {
	return is.vitals.markChanged(id, metric)
}

func (is *ISessionImpl) Save(id string, candidate models.VitalsRecord) (models.Session, error) {
	return is.vitals.saveSession(id, candidate)
}

func (is *ISessionImpl) Reset(id string) models.Session {
	return is.vitals.resetSession(id)
}

func (v *Vitals) GetISession() ISession {
	return &ISessionImpl{vitals: v}
}
