package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args on a private
// flag set, so it can be called more than once (e.g. from tests).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-users-url base URL of the users service
//	-users-timeout users service request timeout (e.g., "5s")
//	-token-issuer reset token issuer name
//	-token-duration bearer token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-routes-auth-mode "validate" or "presence"
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var usersServiceURL string
	var usersTimeout time.Duration
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var routesAuthMode string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&usersServiceURL, "users-url", "", "Users service base URL")
	fs.DurationVar(&usersTimeout, "users-timeout", 0, "Users service request timeout (e.g., 5s)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Reset token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&routesAuthMode, "routes-auth-mode", "", "Routes auth mode: validate or presence")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			RoutesAuthMode: routesAuthMode,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			UsersServiceURL: usersServiceURL,
			RequestTimeout:  usersTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host listens on all interfaces. Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
