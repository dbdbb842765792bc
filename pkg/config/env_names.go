package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "QUICKCART"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv    = "QUICKCART_APP_ENV"
	EnvPort      = "QUICKCART_APP_PORT"
	EnvDBDSN     = "QUICKCART_DB_DSN"
	EnvDBHost    = "QUICKCART_DB_HOST"
	EnvDBUser    = "QUICKCART_DB_USER"
	EnvDBName    = "QUICKCART_DB_NAME"
	EnvRedisURL  = "QUICKCART_REDIS_URL"
	EnvJWTSecret = "QUICKCART_JWT_SECRET"
	EnvJWTIssuer = "QUICKCART_JWT_ISSUER"
	EnvCurrency  = "QUICKCART_CURRENCY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
