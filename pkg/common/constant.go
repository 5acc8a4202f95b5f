package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyInfluxURL    string = "INFLUXDB_V2_URL"
	EnvKeyInfluxToken  string = "INFLUXDB_V2_TOKEN"
	EnvKeyInfluxOrg    string = "INFLUXDB_V2_ORG"
	EnvKeyInfluxBucket string = "INFLUXDB_V2_BUCKET"

	EnvKeyVitalsHttpHostPort string = "VITALS_HTTP_HOST_PORT"
	EnvKeyVitalsTemplateDir  string = "VITALS_TEMPLATE_DIR"

	EnvKeyVitalsDBType string = "VITALS_DB_TYPE"
	EnvKeyVitalsDbPath string = "VITALS_DB_PATH"

	EnvKeyVitalsCacheTTL     string = "VITALS_CACHE_TTL_SECONDS"
	EnvKeyVitalsStaleAfter   string = "VITALS_STALE_AFTER_SECONDS"
	EnvKeyVitalsDefaultRate  string = "VITALS_DEFAULT_RATE"
	EnvKeyVitalsDefaultBurst string = "VITALS_DEFAULT_BURST"

	LoggerNameVitalsCore    string = "vitals_core"
	LoggerNameFluxStore     string = "flux_store"
	LoggerNameInfluxClient  string = "influx_client"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategoryQuery     string = "query"
	LoggerCategoryCache     string = "cache"
	LoggerCategorySession   string = "session"
	LoggerCategoryWrite     string = "write"
	LoggerCategoryJournal   string = "journal"
)
