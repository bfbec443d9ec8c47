package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySoilDBType string = "SOIL_DB_TYPE"
	EnvKeySoilDbPath string = "SOIL_DB_PATH"

	EnvKeySoilHttpHostPort string = "SOIL_HTTP_HOST_PORT"

	EnvKeySoilMildRate   string = "SOIL_MILD_RATE"
	EnvKeySoilMediumRate string = "SOIL_MEDIUM_RATE"
	EnvKeySoilStrictRate string = "SOIL_STRICT_RATE"
	EnvKeySoilBurst      string = "SOIL_BURST"

	LoggerNameSoilCore      string = "soil_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldSoilCategory string = "category"

	LoggerCategorySoilRegister string = "register"
	LoggerCategorySoilShare    string = "share"
	LoggerCategorySoilReading  string = "reading"
	LoggerCategorySoilQuery    string = "query"
)
