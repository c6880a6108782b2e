package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyLogDir string = "EMS_LOG_DIR"

	EnvKeyDBType string = "EMS_DB_TYPE"
	EnvKeyDBPath string = "EMS_DB_PATH"
	EnvKeyDBDSN  string = "EMS_DB_DSN"

	EnvKeyHttpHostPort string = "EMS_HTTP_HOST_PORT"
	EnvKeyGrpcHostPort string = "EMS_GRPC_HOST_PORT"

	EnvKeyDefaultRate  string = "EMS_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "EMS_DEFAULT_BURST"

	EnvKeyJWTSecret string = "EMS_JWT_SECRET"
	EnvKeyTokenTTL  string = "EMS_TOKEN_TTL"

	EnvKeyModelPath        string = "EMS_MODEL_PATH"
	EnvKeyModelWatch       string = "EMS_MODEL_WATCH"
	EnvKeyInferenceTimeout string = "EMS_INFERENCE_TIMEOUT"

	EnvKeyWindowSize         string = "EMS_WINDOW_SIZE"
	EnvKeyFeatures           string = "EMS_FEATURES"
	EnvKeyAlertThreshold     string = "EMS_ALERT_THRESHOLD"
	EnvKeyRULMidpoint        string = "EMS_RUL_MIDPOINT"
	EnvKeyRULHorizon         string = "EMS_RUL_HORIZON"
	EnvKeyAttentionThreshold string = "EMS_ATTENTION_THRESHOLD"
	EnvKeyCriticalThreshold  string = "EMS_CRITICAL_THRESHOLD"

	LoggerNameFleetCore     string = "fleet_core"
	LoggerNameInference     string = "inference"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameCli           string = "cli"

	LoggerFieldCategory          string = "category"
	LoggerCategoryEngine         string = "engine"
	LoggerCategoryCycle          string = "cycle"
	LoggerCategoryScoring        string = "scoring"
	LoggerCategoryAlert          string = "alert"
	LoggerCategoryMaintenance    string = "maintenance"
	LoggerCategoryUser           string = "user"
	LoggerCategoryDashboard      string = "dashboard"
	LoggerCategoryModel          string = "model"
	LoggerCategoryRequest        string = "request"
	LoggerCategoryRescoreCommand string = "rescore"
)
