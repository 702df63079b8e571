package config

import (
	"errors"
	"flag"
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

// parseFlags parses configuration flags from args (without the program
// name). Unknown flags produce an error instead of exiting the process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-server remote validator address for the client
//	-request-timeout request timeout for server and client (e.g. "5s")
//	-mode client mode: console, tui or scenarios
//	-regions comma-separated region list (e.g. "N,S,E,O")
//	-regions-file properties file holding BANK_VALID_REGIONS
//	-log-level zerolog level name
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bank-validator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var adapterAddress string
	var requestTimeout time.Duration
	var mode string
	var regions string
	var regionsFile string
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "server", "", "Remote validator address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mode, "mode", "", "Client mode: console, tui or scenarios")
	fs.StringVar(&regions, "regions", "", "Comma-separated branch regions")
	fs.StringVar(&regionsFile, "regions-file", "", "Properties file with BANK_VALID_REGIONS")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Mode: mode,
		},
		Rules: Rules{
			Regions:     regions,
			RegionsFile: regionsFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
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

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Any other host must be
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
