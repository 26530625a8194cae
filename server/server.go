// Copyright 2017-2026, Square, Inc.

// Package server bootstraps and runs the shader compile server.
package server

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/api"
	"github.com/square/shadergraph/app"
)

type Server struct {
	appCtx app.Context
	api    *api.API
}

func NewServer(appCtx app.Context) *Server {
	return &Server{
		appCtx: appCtx,
	}
}

func (s *Server) Boot() error {
	// Load config file
	cfg, err := s.appCtx.Hooks.LoadConfig(s.appCtx)
	if err != nil {
		return fmt.Errorf("error loading config: %s", err)
	}
	s.appCtx.Config = cfg

	// Load the document library. Done only once on startup.
	docs, err := s.appCtx.Hooks.LoadDocuments(s.appCtx)
	if err != nil {
		return fmt.Errorf("error loading documents: %s", err)
	}
	s.appCtx.Documents = docs

	// Compiler: checks and compiles documents within the generation budget
	c, err := s.appCtx.Factories.MakeCompiler(s.appCtx)
	if err != nil {
		return fmt.Errorf("MakeCompiler: %s", err)
	}
	s.appCtx.Compiler = c

	// Repo: where compiled shaders are saved
	repo, err := s.appCtx.Factories.MakeRepo(s.appCtx)
	if err != nil {
		return fmt.Errorf("MakeRepo: %s", err)
	}
	s.appCtx.Repo = repo

	// API: endpoints and controllers
	s.api = api.NewAPI(s.appCtx)

	log.WithFields(log.Fields{
		"addr":      cfg.Server.ListenAddress,
		"documents": len(docs),
		"repo":      cfg.RepoType,
		"precision": cfg.Precision,
	}).Info("server booted")
	return nil
}

func (s *Server) Run() error {
	if s.api == nil {
		panic("Server.Run called before Server.Boot")
	}
	return s.api.Run()
}

func (s *Server) Stop() error {
	if s.api == nil {
		return nil
	}
	return s.api.Stop()
}

func (s *Server) API() *api.API {
	return s.api
}
