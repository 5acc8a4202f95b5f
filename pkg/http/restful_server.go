package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
	"vitalboard.xyz/vitals-telemetry-service/pkg/vitals"
)

// HeaderSessionID carries the editable-session identifier. The server
// issues one on first contact and echoes it back on every response.
const HeaderSessionID = "X-Session-ID"

type RestfulServer struct {
	Server           *gin.Engine
	Vitals           *vitals.Vitals
	RateLimiterStore *vitals.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(sessionID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(sessionID)
	}
}

func (rs *RestfulServer) CheckSessionLimiter(sessionID string) bool {
	limiter := rs.GetLimiter(sessionID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	session := rs.Server.Group("/vitals", rs.EnsureSession)
	{
		session.GET("", rs.GetVitals)
		session.PUT("", rs.SaveVitals)
		session.POST("/changed", rs.MarkChanged)
		session.POST("/reset", rs.ResetVitals)
		session.GET("/latest-temperature", rs.GetLatestTemperature)
		session.GET("/history", rs.GetHistory)
		session.GET("/journal", rs.GetJournal)
	}
}

// EnsureSession resolves the session identifier, issuing a fresh one when
// the caller has none yet.
func (rs *RestfulServer) EnsureSession(c *gin.Context) {
	sessionID := c.GetHeader(HeaderSessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
		common.GetLoggerWith(common.LoggerNameRestfulServer).Debug("Issued new session",
			zap.String("session_id", sessionID))
	}
	c.Header(HeaderSessionID, sessionID)
	c.Set("session_id", sessionID)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
