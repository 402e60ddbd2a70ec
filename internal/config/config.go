package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Service names served by binaries in this repository.
const (
	UserService  = "user-service"
	OrderService = "order-service"
)

// Token strategies accepted by TOKEN_STRATEGY.
const (
	TokenStrategyHMAC = "hmac"
	TokenStrategyJWT  = "jwt"
)

// Config holds service level configuration loaded from environment and flags.
type Config struct {
	ServiceName     string
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	TokenStrategy   string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	LoginRateLimit  float64
	LoginRateBurst  int
	LogLevel        string
	// TrustedProxies lists proxy IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the TCP peer address is the client address.
	TrustedProxies []string
}

const (
	defaultUserRunAddress  = ":8081"
	defaultOrderRunAddress = ":8082"
	defaultJWTSecret       = "change-me-in-production"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultLoginRateLimit  = 5.0
	defaultLoginRateBurst  = 10
	defaultLogLevel        = "info"
)

// Load parses configuration of the named service from flags and environment variables.
func Load(service string) (*Config, error) {
	return load(service, os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(service string, args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		ServiceName:     service,
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress(service)),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenStrategy:   getString(lookup, "TOKEN_STRATEGY", TokenStrategyHMAC),
		LoginRateLimit:  getFloat(lookup, "LOGIN_RATE_LIMIT", defaultLoginRateLimit),
		LoginRateBurst:  getInt(lookup, "LOGIN_RATE_BURST", defaultLoginRateBurst),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet(service, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = getString(lookup, "TOKEN_TTL", defaultTokenTTL.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		trustedProxiesStr  = getString(lookup, "TRUSTED_PROXIES", "")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory store when empty")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Auth token format: hmac or jwt")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.Float64Var(&cfg.LoginRateLimit, "login-rate", cfg.LoginRateLimit, "Login attempts per second per client")
	fs.IntVar(&cfg.LoginRateBurst, "login-burst", cfg.LoginRateBurst, "Login attempts burst per client")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&trustedProxiesStr, "trusted-proxies", trustedProxiesStr, "Comma separated proxy IPs or CIDRs trusted for X-Forwarded-For")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.TrustedProxies, err = parseTrustedProxies(trustedProxiesStr); err != nil {
		return nil, err
	}

	secretFlagSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "jwt-secret" {
			secretFlagSet = true
		}
	})

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" && !secretFlagSet {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.LoginRateLimit <= 0 {
		cfg.LoginRateLimit = defaultLoginRateLimit
	}

	if cfg.LoginRateBurst <= 0 {
		cfg.LoginRateBurst = defaultLoginRateBurst
	}

	cfg.TokenStrategy = strings.ToLower(strings.TrimSpace(cfg.TokenStrategy))
	switch cfg.TokenStrategy {
	case TokenStrategyHMAC, TokenStrategyJWT:
	default:
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	return cfg, nil
}

func defaultRunAddress(service string) string {
	if service == OrderService {
		return defaultOrderRunAddress
	}
	return defaultUserRunAddress
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func parseTrustedProxies(raw string) ([]string, error) {
	var proxies []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if net.ParseIP(part) == nil {
			if _, _, err := net.ParseCIDR(part); err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", part)
			}
		}
		proxies = append(proxies, part)
	}
	return proxies, nil
}
