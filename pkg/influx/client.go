package influx

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"vitalboard.xyz/vitals-telemetry-service/pkg/common"
)

var (
	// ErrQueryFailed means the endpoint was unreachable or rejected the
	// resolved query. Callers surface it as an empty result, never a crash.
	ErrQueryFailed = errors.New("influx query failed")

	// ErrWriteFailed means the write was not acknowledged. In-memory state
	// is left untouched so the caller may retry.
	ErrWriteFailed = errors.New("influx write failed")
)

// Config locates the time-series endpoint. Nothing here is hardcoded; it
// comes from the environment.
type Config struct {
	URL     string
	Token   string
	Org     string
	Bucket  string
	Timeout time.Duration
}

// ConfigFromEnv reads the endpoint location from the INFLUXDB_V2_* keys,
// defaulting the scheme to https like the dashboard always did.
func ConfigFromEnv() (Config, error) {
	url := strings.TrimSpace(os.Getenv(common.EnvKeyInfluxURL))
	if url == "" {
		return Config{}, fmt.Errorf("%s not set", common.EnvKeyInfluxURL)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	cfg := Config{
		URL:     url,
		Token:   os.Getenv(common.EnvKeyInfluxToken),
		Org:     os.Getenv(common.EnvKeyInfluxOrg),
		Bucket:  os.Getenv(common.EnvKeyInfluxBucket),
		Timeout: 30 * time.Second,
	}
	if cfg.Token == "" {
		return Config{}, fmt.Errorf("%s not set", common.EnvKeyInfluxToken)
	}
	if cfg.Org == "" {
		return Config{}, fmt.Errorf("%s not set", common.EnvKeyInfluxOrg)
	}
	return cfg, nil
}

// Client talks to an InfluxDB v2 HTTP endpoint. Connections are scoped per
// call; no persistent pool is assumed.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{cfg: cfg}
}

func (c *Client) Bucket() string {
	return c.cfg.Bucket
}

func (c *Client) httpClient() *resty.Client {
	return resty.New().
		SetBaseURL(c.cfg.URL).
		SetTimeout(c.cfg.Timeout).
		SetHeader("Authorization", "Token "+c.cfg.Token)
}

// Query posts a resolved Flux script to the read path and parses the
// annotated CSV response.
func (c *Client) Query(script string) (Table, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInfluxClient,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryQuery),
	)

	resp, err := c.httpClient().R().
		SetQueryParam("org", c.cfg.Org).
		SetHeader("Content-Type", "application/vnd.flux").
		SetHeader("Accept", "application/csv").
		SetBody(script).
		Post("/api/v2/query")
	if err != nil {
		logger.Error("Error running flux script", zap.Error(err))
		return Table{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if resp.IsError() {
		logger.Error("Flux query rejected by endpoint",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()))
		return Table{}, fmt.Errorf("%w: status %d", ErrQueryFailed, resp.StatusCode())
	}

	table, err := ParseAnnotatedCSV(strings.NewReader(resp.String()))
	if err != nil {
		logger.Error("Error parsing query response", zap.Error(err))
		return Table{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return table, nil
}

// WritePoint sends one point through the synchronous write path, targeted
// at the configured bucket and org. Success means the endpoint acknowledged.
func (c *Client) WritePoint(p Point) error {
	logger := common.GetLoggerWith(
		common.LoggerNameInfluxClient,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryWrite),
	)

	resp, err := c.httpClient().R().
		SetQueryParams(map[string]string{
			"org":       c.cfg.Org,
			"bucket":    c.cfg.Bucket,
			"precision": "ns",
		}).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetBody(p.LineProtocol()).
		Post("/api/v2/write")
	if err != nil {
		logger.Error("Error writing point", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if resp.IsError() {
		logger.Error("Write rejected by endpoint",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()))
		return fmt.Errorf("%w: status %d", ErrWriteFailed, resp.StatusCode())
	}

	logger.Info("Point written",
		zap.String("measurement", p.Measurement),
		zap.Int("field_count", len(p.Fields)))
	return nil
}
