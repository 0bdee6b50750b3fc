package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyWalekiDBType string = "WALEKI_DB_TYPE"
	EnvKeyWalekiDBPath string = "WALEKI_DB_PATH"

	EnvKeyWalekiHttpHostPort string = "WALEKI_HTTP_HOST_PORT"

	EnvKeyWalekiDefaultRate  string = "WALEKI_DEFAULT_RATE"
	EnvKeyWalekiDefaultBurst string = "WALEKI_DEFAULT_BURST"

	EnvKeyWalekiSessionTTLHours string = "WALEKI_SESSION_TTL_HOURS"

	LoggerNameTelemetryCore string = "telemetry_core"
	LoggerNameAuth          string = "auth"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategoryReading   string = "reading"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryStats     string = "stats"
	LoggerCategoryIngest    string = "ingest"
	LoggerCategorySession   string = "session"
	LoggerCategorySeed      string = "seed"
)
