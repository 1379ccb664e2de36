package core

const (
	AppName       = "tuskmem"
	AppTitle      = "Memory Dashboard"
	AppVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/tuskmem"
)
