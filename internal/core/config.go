package core

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetEnvPath() string
	GetLogPath() string
	GetSourceKind() string
	GetDateLayout() string
}
