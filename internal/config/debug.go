package config

import "os"

func IsDebug() bool {
	return os.Getenv("TUSKMEM_DEBUG") == "1"
}
