// Copyright 2017-2026, Square, Inc.

package config

import (
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

///////////////////////////////////////////////////////////////////////////////
// High-Level Config Structs
///////////////////////////////////////////////////////////////////////////////

// The config used by the shader compiler, both the server and the CLI. This
// is read from in server.Boot and shaderc.
type Compiler struct {
	// The config that the compile API web server will run with.
	Server Server `yaml:"server"`

	// Floating point precision of generated variables: "float" or "half".
	// A document's own precision overrides this.
	Precision string `yaml:"precision"`

	// Maximum number of upgrade steps applied to one document. Zero means
	// as many as the upgrade chain has.
	MaxUpgradeSteps int `yaml:"max_upgrade_steps"`

	// Wall-clock budget in milliseconds for compiling one document.
	GenerationTimeout int `yaml:"generation_timeout"`

	// Number of documents compiled concurrently by batch compiles.
	Workers int `yaml:"workers"`

	// Directory of graph documents the server can compile by name. May be
	// empty, in which case only inline documents can be compiled.
	DocumentDir string `yaml:"document_dir"`

	// The type of backend to use for the shader repo. Choices are: memory,
	// mysql. If this is set to mysql, Db is used.
	RepoType string `yaml:"repo_type"`

	// The config used to connect to MySQL (if RepoType is mysql).
	Db SQLDb `yaml:"db"`
}

///////////////////////////////////////////////////////////////////////////////
// Config Components
///////////////////////////////////////////////////////////////////////////////

// Configuration for a web server.
type Server struct {
	// The address the server will listen on (ex: "127.0.0.1:80").
	ListenAddress string `yaml:"listen_address"`

	// The TLS config used by the server.
	TLS TLS `yaml:"tls"`
}

// Configuration for a SQL database.
type SQLDb struct {
	// The full Data Source Name (DSN) of the MySQL database (see
	// https://github.com/go-sql-driver/mysql#dsn-data-source-name).
	//
	// Note: if a TLS config is specified, it is registered with the driver
	// and added to the DSN. parseTime is always enabled.
	DSN string `yaml:"dsn"`

	// The TLS config used to connect to the database.
	TLS TLS `yaml:"tls"`
}

// TLS configuration.
type TLS struct {
	// The certificate file to use.
	CertFile string `yaml:"cert_file"`

	// The key file to use.
	KeyFile string `yaml:"key_file"`

	// The CA file to use.
	CAFile string `yaml:"ca_file"`
}

///////////////////////////////////////////////////////////////////////////////
// Defaults and Loading Config
///////////////////////////////////////////////////////////////////////////////

const (
	DEFAULT_LISTEN_ADDRESS     = "127.0.0.1:9340"
	DEFAULT_PRECISION          = "float"
	DEFAULT_GENERATION_TIMEOUT = 5000 // ms
	DEFAULT_WORKERS            = 4
	DEFAULT_REPO_TYPE          = "memory"
)

// Defaults returns the config used when no config file is given. Load
// unmarshals over it, so files only need to set what they change.
func Defaults() Compiler {
	return Compiler{
		Server: Server{
			ListenAddress: DEFAULT_LISTEN_ADDRESS,
		},
		Precision:         DEFAULT_PRECISION,
		GenerationTimeout: DEFAULT_GENERATION_TIMEOUT,
		Workers:           DEFAULT_WORKERS,
		RepoType:          DEFAULT_REPO_TYPE,
	}
}

// Load loads a configuration file into the struct pointed to by the
// configStruct argument.
func Load(configFile string, configStruct interface{}) error {
	// Make sure the file exists.
	_, err := os.Stat(configFile)
	if err != nil {
		return err
	}

	// Read the file.
	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return err
	}

	// Unmarshal the contents of the file into the provided struct.
	err = yaml.Unmarshal(data, configStruct)
	if err != nil {
		return err
	}

	return nil
}
