// Copyright 2017-2026, Square, Inc.

// Package app provides the application context for the compile server:
// config, documents, and the factories and hooks that make the rest. Callers
// replace hooks and factories to customize the server before Boot.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/compiler"
	"github.com/square/shadergraph/config"
	"github.com/square/shadergraph/document"
	"github.com/square/shadergraph/id"
	"github.com/square/shadergraph/retry"
	"github.com/square/shadergraph/store"
	"github.com/square/shadergraph/util"
	"github.com/square/shadergraph/value"
)

const (
	DB_PING_TRIES = 5
	DB_PING_WAIT  = 2 * time.Second
)

type Context struct {
	Hooks     Hooks
	Factories Factories

	Config    config.Compiler
	Documents map[string][]byte // library: document name => YAML
	Compiler  *compiler.Compiler
	Repo      store.Repo
}

type Factories struct {
	MakeCompiler func(Context) (*compiler.Compiler, error)
	MakeRepo     func(Context) (store.Repo, error)
	MakeDbConn   func(Context) (*sql.DB, error)
}

type Hooks struct {
	LoadConfig    func(Context) (config.Compiler, error)
	LoadDocuments func(Context) (map[string][]byte, error)
}

func Defaults() Context {
	return Context{
		Factories: Factories{
			MakeCompiler: MakeCompiler,
			MakeRepo:     MakeRepo,
			MakeDbConn:   MakeDbConn,
		},
		Hooks: Hooks{
			LoadConfig:    LoadConfig,
			LoadDocuments: LoadDocuments,
		},
	}
}

// LoadConfig loads the file named by the first command line argument, or by
// $SHADERGRAPH_CONFIG, over config.Defaults. With neither set the defaults
// are used as is.
func LoadConfig(ctx Context) (config.Compiler, error) {
	cfg := config.Defaults()
	var cfgFile string
	if len(os.Args) > 1 {
		cfgFile = os.Args[1]
	} else {
		cfgFile = os.Getenv("SHADERGRAPH_CONFIG")
	}
	if cfgFile == "" {
		return cfg, nil
	}
	err := config.Load(cfgFile, &cfg)
	return cfg, err
}

// LoadDocuments reads every .yaml file under Config.DocumentDir. Documents
// are named by their path relative to the directory without the extension.
// A document that does not parse fails the load.
func LoadDocuments(ctx Context) (map[string][]byte, error) {
	docs := map[string][]byte{}
	dir := ctx.Config.DocumentDir
	if dir == "" {
		return docs, nil
	}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".yaml") {
			return nil
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(relPath), ".yaml")

		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		logFunc := func(format string, args ...interface{}) {
			log.WithField("document", name).Warnf(strings.TrimSpace(format), args...)
		}
		if _, err := document.Parse(data, name, logFunc); err != nil {
			return fmt.Errorf("document %s: %s", name, err)
		}
		docs[name] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading documents in %s: %s", dir, err)
	}
	log.WithFields(log.Fields{"dir": dir, "documents": len(docs)}).Info("loaded documents")
	return docs, nil
}

func MakeCompiler(ctx Context) (*compiler.Compiler, error) {
	cfg := ctx.Config
	p, err := value.ParsePrecision(cfg.Precision)
	if err != nil {
		return nil, err
	}
	checker, err := document.NewChecker([]document.CheckFactory{document.BaseCheckFactory{}, document.DefaultCheckFactory{}})
	if err != nil {
		return nil, err
	}
	c := compiler.NewCompiler(compiler.Config{
		Precision:       p,
		MaxUpgradeSteps: cfg.MaxUpgradeSteps,
		Timeout:         time.Duration(cfg.GenerationTimeout) * time.Millisecond,
		Workers:         cfg.Workers,
	}, checker, id.NewGeneratorFactory(100))
	return c, nil
}

func MakeRepo(ctx Context) (store.Repo, error) {
	switch ctx.Config.RepoType {
	case "", "memory":
		return store.NewMemoryRepo(), nil
	case "mysql":
		db, err := ctx.Factories.MakeDbConn(ctx)
		if err != nil {
			return nil, err
		}
		return store.NewMySQLRepo(db), nil
	}
	return nil, fmt.Errorf("invalid repo_type: %s (expected memory or mysql)", ctx.Config.RepoType)
}

func MakeDbConn(ctx Context) (*sql.DB, error) {
	dbcfg := ctx.Config.Db
	dsn, err := mysql.ParseDSN(dbcfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid db dsn: %s", err)
	}
	dsn.ParseTime = true // always needs to be set
	dsn.Loc = time.UTC
	if dbcfg.TLS.CAFile != "" && dbcfg.TLS.CertFile != "" && dbcfg.TLS.KeyFile != "" {
		tlsConfig, err := util.NewTLSConfig(dbcfg.TLS.CAFile, dbcfg.TLS.CertFile, dbcfg.TLS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("error loading database TLS config: %s", err)
		}
		if err := mysql.RegisterTLSConfig("custom", tlsConfig); err != nil {
			return nil, err
		}
		dsn.TLSConfig = "custom"
	}
	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("error creating sql.DB: %s", err)
	}
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(100)
	db.SetConnMaxLifetime(12 * time.Hour)

	// Wait for the db to come up
	ping := func() error { return db.Ping() }
	logPing := func(try int, err error) {
		log.WithFields(log.Fields{"addr": dsn.Addr, "try": try}).Warnf("db ping failed: %s", err)
	}
	if err := retry.Do(context.Background(), DB_PING_TRIES, DB_PING_WAIT, ping, logPing); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to db: %s", err)
	}
	return db, nil
}
