package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
)

type Config struct {
	AppPort string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	DBMaxOpenConns int
	DBMaxIdleConns int

	// "*" allows any origin
	CORSAllowedOrigin  string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string

	LogLevel  string
	LogFormat string

	// ExposeErrorDetails puts the underlying store error in the `details`
	// field of 500 responses. Off by default: clients get only the generic
	// message and the full error (table, SQL, MySQL number) is logged.
	// Set EXPOSE_ERROR_DETAILS=true for clients that read `details`.
	ExposeErrorDetails bool

	// BodyLimit caps request bodies, in echo's size notation ("100K", "1M").
	BodyLimit string

	ShutdownTimeout time.Duration
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getlist(k, d string) []string {
	var out []string
	for _, p := range strings.Split(getenv(k, d), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads the environment, after merging a .env file from the working
// directory when there is one. Variables already set win over .env.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppPort:    getenv("PORT", "5000"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "loan_db"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),

		DBMaxOpenConns: getint("DB_MAX_OPEN_CONNS", 30),
		DBMaxIdleConns: getint("DB_MAX_IDLE_CONNS", 10),

		CORSAllowedOrigin:  strings.TrimSuffix(getenv("CORS_ALLOWED_ORIGIN", "https://loc-ivory.vercel.app"), "/"),
		CORSAllowedMethods: getlist("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
		CORSAllowedHeaders: getlist("CORS_ALLOWED_HEADERS", "Content-Type"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		BodyLimit: getenv("BODY_LIMIT", "100K"),

		ShutdownTimeout: time.Duration(getint("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	if v, err := strconv.ParseBool(os.Getenv("EXPOSE_ERROR_DETAILS")); err == nil {
		c.ExposeErrorDetails = v
	}
	return c
}

func (c *Config) Validate() error {
	if c.DBHost == "" || c.DBPort == "" || c.DBName == "" || c.DBUser == "" {
		return errors.New("missing database config (DB_HOST/PORT/NAME/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing PORT")
	}
	if c.DBMaxOpenConns < 1 || c.DBMaxIdleConns < 0 {
		return fmt.Errorf("invalid pool size: open=%d idle=%d", c.DBMaxOpenConns, c.DBMaxIdleConns)
	}
	if c.CORSAllowedOrigin == "" {
		return errors.New("missing CORS_ALLOWED_ORIGIN (use * to allow any origin)")
	}
	if n, err := bytes.Parse(c.BodyLimit); err != nil || n <= 0 {
		return fmt.Errorf("invalid BODY_LIMIT %q", c.BodyLimit)
	}
	return nil
}

func (c *Config) dbAddr() string { return net.JoinHostPort(c.DBHost, c.DBPort) }

// MySQLDSN renders the driver DSN; parseTime is needed for DATETIME columns.
func (c *Config) MySQLDSN() string {
	dc := mysqldrv.NewConfig()
	dc.User = c.DBUser
	dc.Passwd = c.DBPassword
	dc.Net = "tcp"
	dc.Addr = c.dbAddr()
	dc.DBName = c.DBName
	dc.ParseTime = true
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc.FormatDSN()
}
