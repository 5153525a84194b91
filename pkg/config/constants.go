package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// SHIFTLINE_ tags so the prefix stays empty here.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "SHIFTLINE_DB_DSN"
	EnvDBHost = "SHIFTLINE_DB_HOST"
	EnvDBUser = "SHIFTLINE_DB_USER"
	EnvDBName = "SHIFTLINE_DB_NAME"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
