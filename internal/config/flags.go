package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
)

var (
	errPortRange  = errors.New("port must be between 1 and 65535")
	errListenHost = errors.New("host must be an IP address or localhost")
)

// NetAddress is a listen address flag value. The host may be empty to
// listen on every interface.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errListenHost
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads the server command line. Unset flags leave their field
// zero so lower-priority sources can fill them.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("nrsync-server", flag.ContinueOnError)

	var address NetAddress
	fs.Var(&address, "a", "listen address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (alias of -c)")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "staging database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "database driver (pgx|sqlite3)")
	fs.StringVar(&cfg.Storage.Files.SyncDir, "sync-dir", "", "directory with one subdirectory per target")
	fs.StringVar(&cfg.Storage.Files.ScratchDir, "scratch-dir", "", "directory artifacts are built in")
	fs.StringVar(&cfg.Storage.Files.Root, "root", "", "CMS installation root")

	fs.StringVar(&cfg.Sync.AreasFile, "areas", "", "areas YAML file")
	fs.StringVar(&cfg.Sync.CatalogFile, "catalog", "", "table catalog YAML file")
	fs.StringVar(&cfg.Sync.DefaultTarget, "default-target", "", "target used when a request names none")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "editor token signing key")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "HTTP request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "scheduled sync interval (e.g. 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = address.String()
	return cfg, nil
}
