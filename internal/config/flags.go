package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/netip"
	"strconv"
)

var (
	errAddressFormat    = errors.New("need address in a form `host:port`")
	errPortOutOfRange   = errors.New("port number must be in range 1..65535")
	errIncorrectAddress = errors.New("incorrect IP-address provided")
)

// NetAddress is a listen address given on the command line. It implements
// flag.Value. The host may be empty, "localhost" or an IPv4/IPv6 literal;
// IPv6 hosts are written in brackets, as in "[::1]:8080".
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command line of the course-auth server.
//
// Flags:
//
//	-a                      http listen address, host:port
//	-grpc-address           grpc health listen address, host:port
//	-d                      PostgreSQL DSN
//	-c, -config             JSON config file
//	-reset-grant-sign-key   HMAC key for reset grants
//	-reset-code-ttl         reset code lifetime, e.g. 10m
//	-legacy-password-reset  accept POST /reset_password without a grant
//	-password-hash-cost     bcrypt cost
//	-log-level              zerolog level name
//	-request-timeout        per-request handler timeout, e.g. 30s
//	-redis-address          redis address for OAuth states
//	-cleanup-interval       period of the expired-row cleanup worker
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-course-auth", flag.ContinueOnError)

	var (
		httpAddress, grpcAddress NetAddress
		cfg                      StructuredConfig
	)

	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.App.ResetGrantSignKey, "reset-grant-sign-key", "", "Reset grant signing key")
	fs.DurationVar(&cfg.App.ResetCodeTTL, "reset-code-ttl", 0, "Reset code lifetime (e.g., 10m)")
	fs.BoolVar(&cfg.App.LegacyPasswordReset, "legacy-password-reset", false, "Accept password resets without a reset grant")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost factor")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis address for OAuth states")
	fs.DurationVar(&cfg.Workers.CleanupInterval, "cleanup-interval", 0, "Expired row cleanup period (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String returns the address as host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses s as host:port.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortOutOfRange
	}

	if host != "" && host != "localhost" {
		if _, err := netip.ParseAddr(host); err != nil {
			return fmt.Errorf("%w: %w", errIncorrectAddress, err)
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
