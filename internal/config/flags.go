package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL of the remote form service
//	-t bearer token for the form service
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-d local catalog database path
//	-f forms directory path
//	-l trigger endpoint listen address in format [host]:[port]
//	-sync-interval recurring sync interval (e.g., "15m", "1h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var serverToken string
	var requestTimeout time.Duration
	var databaseDSN string
	var formsDir string
	var triggerAddress NetAddress
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Form service base URL")
	flag.StringVar(&serverToken, "t", "", "Form service bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local catalog database path")
	flag.StringVar(&formsDir, "f", "", "Forms directory path")
	flag.Var(&triggerAddress, "l", "Trigger endpoint listen address host:port")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Recurring sync interval (e.g., 15m, 1h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Address:        serverAddress,
			Token:          serverToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				FormsDir: formsDir,
			},
		},
		Trigger: Trigger{
			Address: triggerAddress.String(),
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither host nor port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
