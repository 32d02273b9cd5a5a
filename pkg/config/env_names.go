package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "COURSES"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	// DefaultSQLitePath is used when the sqlite driver is selected without a DSN.
	DefaultSQLitePath = "courses.db"
)

// Canonical env var names, referenced by error messages and tests.
const (
	EnvAppEnv   = "COURSES_APP_ENV"
	EnvPort     = "COURSES_APP_PORT"
	EnvDBDSN    = "COURSES_DB_DSN"
	EnvDBDriver = "COURSES_DB_DRIVER"
	EnvDBHost   = "COURSES_DB_HOST"
	EnvDBUser   = "COURSES_DB_USER"
	EnvDBName   = "COURSES_DB_NAME"
	EnvRedisURL = "COURSES_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
