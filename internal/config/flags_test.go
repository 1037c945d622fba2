package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 3000}, expected: "localhost:3000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:3000", expectedAddr: NetAddress{Host: "localhost", Port: 3000}},
		{name: "valid IPv4", input: "0.0.0.0:8080", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "all interfaces", input: ":3000", expectedAddr: NetAddress{Port: 3000}},
		{name: "missing colon", input: "localhost3000", errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number must be in range 1-65535"},
		{name: "port too large", input: "localhost:70000", errorMsg: "port number must be in range 1-65535"},
		{name: "invalid IP address", input: "invalid.host:3000", errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:3000",
				"-driver", "sqlite3",
				"-d", "file:volcanoes.db",
				"-c", "/path/to/config.json",
				"-token-sign-key", "jwt_secret",
				"-token-duration", "24h",
				"-request-timeout", "30s",
				"-log-level", "debug",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
				assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
				assert.Equal(t, "file:volcanoes.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
				assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "debug", cfg.App.LogLevel)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.App.TokenDuration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-a", "invalid"}},
		{name: "invalid port in server address", args: []string{"-a", "localhost:abc"}},
		{name: "invalid duration", args: []string{"-token-duration", "soon"}},
		{name: "unknown flag", args: []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
