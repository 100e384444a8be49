package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "time"     // time parses duration values
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The booking API is an external
// collaborator, so its base URL and a request timeout are configuration
// rather than code; the admin credential is a single bcrypt hash because
// this service gates a dashboard, it does not manage users.
type Config struct {
    Env           string        // application environment (e.g. "dev", "prod")
    Port          string        // HTTP port to listen on
    APIBaseURL    string        // base URL of the booking API, e.g. http://localhost:8000
    APITimeout    time.Duration // per-request timeout for booking API calls
    JWTSecret     string        // secret used to sign admin JWTs
    AccessTTLMin  int           // admin token time-to-live in minutes
    AdminEmail    string        // the dashboard admin's email
    AdminPassHash string        // bcrypt hash of the dashboard admin's password
    SessionTTL    time.Duration // idle lifetime of visitor sessions
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),                 // environment (dev/test/prod)
        Port:          must("APP_PORT"),                // port to bind the HTTP server
        APIBaseURL:    must("BOOKING_API_URL"),         // upstream booking API
        APITimeout:    mustDur("BOOKING_API_TIMEOUT"),  // e.g. "10s"
        JWTSecret:     must("JWT_SECRET"),              // secret used for signing admin JWTs
        AccessTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for admin tokens in minutes
        AdminEmail:    must("ADMIN_EMAIL"),             // dashboard admin email
        AdminPassHash: must("ADMIN_PASSWORD_HASH"),     // bcrypt hash, never the plain password
        SessionTTL:    mustDur("SESSION_TTL"),          // e.g. "30m"
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// mustDur is like must() but parses the value as a time.Duration.
func mustDur(key string) time.Duration {
    s := must(key)
    d, err := time.ParseDuration(s)
    if err != nil {
        log.Fatalf("invalid duration for %s: %q", key, s)
    }
    return d
}
