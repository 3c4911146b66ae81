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
//	-a server address in format [host]:[port]
//	-mongo-uri MongoDB connection string
//	-mongo-database MongoDB database name
//	-redis-addr Redis address in format [host]:[port]
//	-asset-dir asset file storage path
//	-asset-url-prefix URL prefix for serving stored assets
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-session-check consult the session cache on every authenticated request
//	-request-timeout storage operation timeout (e.g., "30s", "1m")
//	-ai-service-url base URL of the AI analysis service
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var mongoURI string
	var mongoDatabase string
	var redisAddr string
	var assetDir string
	var assetURLPrefix string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionCheck bool
	var requestTimeout time.Duration
	var aiServiceURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	flag.StringVar(&mongoDatabase, "mongo-database", "", "MongoDB database name")
	flag.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	flag.StringVar(&assetDir, "asset-dir", "", "Asset file storage path")
	flag.StringVar(&assetURLPrefix, "asset-url-prefix", "", "URL prefix for serving stored assets")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.BoolVar(&sessionCheck, "session-check", false, "Consult the session cache on every authenticated request")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Storage operation timeout (e.g., 30s, 1m)")
	flag.StringVar(&aiServiceURL, "ai-service-url", "", "Base URL of the AI analysis service")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			SessionCheck:  sessionCheck,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			Redis: Redis{
				Addr: redisAddr,
			},
			Files: Files{
				AssetDir:       assetDir,
				AssetURLPrefix: assetURLPrefix,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			AIServiceURL: aiServiceURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// merge step treats the flag as unset.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host: " + host)
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
