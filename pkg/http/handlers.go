package http

import (
	"net/http"

	"vitalboard.xyz/vitals-telemetry-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type VitalsRequest struct {
	Temperature      float64 `json:"temperature"`
	Systolic         int     `json:"systolic"`
	Diastolic        int     `json:"diastolic"`
	HeartRate        int     `json:"heart_rate"`
	RespirationRate  int     `json:"respiration_rate"`
	OxygenSaturation int     `json:"oxygen_saturation"`
}

var vitalsRequestSchema = z.Struct(z.Shape{
	"Temperature":      z.Float64().Required(),
	"Systolic":         z.Int().Required(),
	"Diastolic":        z.Int().Required(),
	"HeartRate":        z.Int().Required(),
	"RespirationRate":  z.Int().Required(),
	"OxygenSaturation": z.Int().Required(),
})

func (rs *RestfulServer) GetVitals(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	c.JSON(http.StatusOK, rs.Vitals.Session.Load(id))
}

func (rs *RestfulServer) SaveVitals(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req VitalsRequest
	if err := vitalsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.Diastolic >= req.Systolic {
		c.JSON(http.StatusBadRequest, gin.H{"error": "diastolic must be below systolic"})
		return
	}

	candidate := models.VitalsRecord{
		Temperature:      req.Temperature,
		Systolic:         req.Systolic,
		Diastolic:        req.Diastolic,
		HeartRate:        req.HeartRate,
		RespirationRate:  req.RespirationRate,
		OxygenSaturation: req.OxygenSaturation,
	}

	session, err := rs.Vitals.Session.Save(id, candidate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

type ChangedRequest struct {
	Metric string `json:"metric"`
}

var changedRequestSchema = z.Struct(z.Shape{
	"Metric": z.String().Required(),
})

func validMetric(m models.Metric) bool {
	if m == models.MetricBloodPressure {
		return true
	}
	for _, known := range models.AllMetrics() {
		if m == known {
			return true
		}
	}
	return false
}

func (rs *RestfulServer) MarkChanged(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ChangedRequest
	if err := changedRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	metric := models.Metric(req.Metric)
	if !validMetric(metric) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric: " + req.Metric})
		return
	}

	c.JSON(http.StatusOK, rs.Vitals.Session.MarkChanged(id, metric))
}

func (rs *RestfulServer) ResetVitals(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	c.JSON(http.StatusOK, rs.Vitals.Session.Reset(id))
}

func (rs *RestfulServer) GetLatestTemperature(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	reading, ok := rs.Vitals.Repo.LatestTemperature()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":   true,
		"temperature": reading.Temperature,
		"measured_at": reading.MeasuredAt,
	})
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	start := c.DefaultQuery("start", "-24h")
	stop := c.DefaultQuery("stop", "now()")

	table, err := rs.Vitals.Repo.History(start, stop)
	if err != nil {
		// Failed and empty queries degrade the same way: an empty table
		// plus a user-visible warning, never a crash.
		c.JSON(http.StatusOK, gin.H{
			"warning": "history query failed, showing no data",
			"columns": []string{},
			"rows":    []string{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": table.Columns,
		"rows":    table.Rows,
	})
}

func (rs *RestfulServer) GetJournal(c *gin.Context) {
	id := sessionID(c)

	if !rs.CheckSessionLimiter(id) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	entries, err := rs.Vitals.Repo.ListJournal(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
