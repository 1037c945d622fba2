package config

import "time"

const dotEnvFile = ".env"

// defaultConfig returns the values used for fields no other source sets.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
		},
		Operator: Operator{
			Name:          "Elvio Wang",
			StudentNumber: "n10771727",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
	}
}
