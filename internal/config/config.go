package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables recognized by FromEnv.
const (
	EnvDriver   = "MSSQL_DRIVER"
	EnvHost     = "MSSQL_HOST"
	EnvUser     = "MSSQL_USER"
	EnvPassword = "MSSQL_PASSWORD"
	EnvDatabase = "MSSQL_DATABASE"
	EnvTrustCer = "MSSQL_TRUST_SERVER_CERTIFICATE"
)

const (
	defaultDriver = "sqlserver"
	defaultHost   = "localhost"

	azureHostSuffix = ".database.windows.net"
)

// Config holds the connection parameters for the target database.
// It is built once at startup and passed by value; handlers never
// read the process environment themselves.
type Config struct {
	Driver                 string
	Host                   string
	User                   string
	Password               string
	Database               string
	TrustServerCertificate bool
}

// FromEnv reads the MSSQL_* environment variables. Missing required
// values are a configuration error; credential correctness is not
// checked here, that surfaces on the first connection attempt.
func FromEnv() (Config, error) {
	cfg := Config{
		Driver:   os.Getenv(EnvDriver),
		Host:     os.Getenv(EnvHost),
		User:     os.Getenv(EnvUser),
		Password: os.Getenv(EnvPassword),
		Database: os.Getenv(EnvDatabase),
	}

	if cfg.Driver == "" {
		cfg.Driver = defaultDriver
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}

	if trust := os.Getenv(EnvTrustCer); trust != "" {
		v, err := strconv.ParseBool(trust)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid boolean %q", EnvTrustCer, trust)
		}
		cfg.TrustServerCertificate = v
	}

	var missing []string
	if cfg.User == "" {
		missing = append(missing, EnvUser)
	}
	if cfg.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if cfg.Database == "" {
		missing = append(missing, EnvDatabase)
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// IsAzure reports whether the host is an Azure SQL Database endpoint.
func (c Config) IsAzure() bool {
	return strings.HasSuffix(strings.ToLower(c.Host), azureHostSuffix)
}

// ConnectionString builds the go-mssqldb key=value DSN. Azure SQL
// always gets full encryption with certificate validation, matching
// what the service itself requires; the trust flag only applies to
// on-prem servers with self-signed certificates.
func (c Config) ConnectionString() string {
	parts := []string{
		"server=" + c.Host,
		"user id=" + c.User,
		"password=" + c.Password,
		"database=" + c.Database,
		"app name=mssql-mcp-server",
		"dial timeout=30",
	}

	if c.IsAzure() {
		parts = append(parts,
			"port=1433",
			"encrypt=true",
			"TrustServerCertificate=false",
		)
	} else if c.TrustServerCertificate {
		parts = append(parts,
			"encrypt=true",
			"TrustServerCertificate=true",
		)
	}

	return strings.Join(parts, ";")
}

// Redacted returns a loggable description without the password.
func (c Config) Redacted() string {
	return fmt.Sprintf("%s/%s as %s", c.Host, c.Database, c.User)
}
