// Copyright 2017-2026, Square, Inc.

// Package api provides controllers for each api endpoint. Controllers are
// "dumb wiring"; there is little to no application logic in this package.
// Controllers call and coordinate other packages to satisfy the api endpoint.
package api

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/app"
	"github.com/square/shadergraph/compiler"
	"github.com/square/shadergraph/document"
	serr "github.com/square/shadergraph/errors"
	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/store"
	"github.com/square/shadergraph/value"
	v "github.com/square/shadergraph/version"
)

const (
	API_ROOT = "/api/v1/"
)

// API provides controllers for endpoints it registers with a router.
// It satisfies the http.HandlerFunc interface.
type API struct {
	appCtx    app.Context
	compiler  *compiler.Compiler
	repo      store.Repo
	documents map[string][]byte
	// --
	echo *echo.Echo
}

// NewAPI creates a new API struct. It initializes an echo web server within the
// struct, and registers all of the API's routes with it.
func NewAPI(appCtx app.Context) *API {
	api := &API{
		appCtx:    appCtx,
		compiler:  appCtx.Compiler,
		repo:      appCtx.Repo,
		documents: appCtx.Documents,
		// --
		echo: echo.New(),
	}

	// //////////////////////////////////////////////////////////////////////
	// Routes
	// //////////////////////////////////////////////////////////////////////

	// Shader
	api.echo.POST(API_ROOT+"shaders", api.createShaderHandler)            // compile
	api.echo.GET(API_ROOT+"shaders", api.listShadersHandler)              // list -> []proto.Shader
	api.echo.GET(API_ROOT+"shaders/:shaderId", api.getShaderHandler)      // get -> proto.Shader
	api.echo.DELETE(API_ROOT+"shaders/:shaderId", api.deleteShaderHandler) // delete

	// Meta
	api.echo.GET(API_ROOT+"graphs", api.graphListHandler) // document library names
	api.echo.GET(API_ROOT+"schema", api.schemaHandler)    // -> proto.Schema
	api.echo.GET("/version", api.versionHandler)          // return version.VERSION

	// //////////////////////////////////////////////////////////////////////
	// Middleware and hooks
	// //////////////////////////////////////////////////////////////////////
	api.echo.Use(middleware.Recover())
	api.echo.Use(middleware.Logger())
	api.echo.Use((func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("X-Shadergraph-Version", v.Version())
			return next(c)
		}
	}))

	return api
}

func (api *API) Router() *echo.Echo {
	return api.echo
}

// Run makes the API listen on the configured address.
func (api *API) Run() error {
	var err error
	tls := api.appCtx.Config.Server.TLS
	if tls.CertFile != "" && tls.KeyFile != "" {
		err = api.echo.StartTLS(api.appCtx.Config.Server.ListenAddress, tls.CertFile, tls.KeyFile)
	} else {
		err = api.echo.Start(api.appCtx.Config.Server.ListenAddress)
	}
	return err
}

// Stop stops the API when it's running. When Stop is called, Run returns
// immediately. Make sure to wait for Stop to return.
func (api *API) Stop() error {
	var err error
	tls := api.appCtx.Config.Server.TLS
	if tls.CertFile != "" && tls.KeyFile != "" {
		err = api.echo.TLSServer.Shutdown(context.TODO())
	} else {
		err = api.echo.Server.Shutdown(context.TODO())
	}
	if err != nil {
		log.Errorf("error stopping API: %s", err)
	}
	return err
}

// ServeHTTP makes the API implement the http.HandlerFunc interface.
func (api *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.echo.ServeHTTP(w, r)
}

// POST <API_ROOT>/shaders
// Compile a document and save the shader.
func (api *API) createShaderHandler(c echo.Context) error {
	var params proto.CreateShader
	if err := c.Bind(&params); err != nil {
		return err
	}

	job := compiler.Job{
		Name:      params.Name,
		Precision: params.Precision,
	}
	switch {
	case params.Graph != "" && params.Document != "":
		return handleError(serr.ErrInvalidCreateShader{Message: "set graph or document, not both"}, c)
	case params.Graph != "":
		data, ok := api.documents[params.Graph]
		if !ok {
			return handleError(serr.GraphNotFound{Name: params.Graph}, c)
		}
		job.Name = params.Graph
		job.Data = data
	case params.Document != "":
		job.Data = []byte(params.Document)
		if job.Name == "" {
			job.Name = "inline"
		}
	default:
		return handleError(serr.ErrInvalidCreateShader{Message: "graph or document required"}, c)
	}

	shader, err := api.compiler.Compile(c.Request().Context(), job)
	if err != nil {
		return handleError(err, c)
	}
	if err := api.repo.Create(shader); err != nil {
		return handleError(err, c)
	}

	// Set the location of the shader in the response header.
	locationUrl, _ := url.Parse(API_ROOT + "shaders/" + shader.Id)
	c.Response().Header().Set("Location", locationUrl.EscapedPath())

	return c.JSON(http.StatusCreated, shader)
}

// GET <API_ROOT>/shaders?document=name&limit=N
// List shaders, newest first.
func (api *API) listShadersHandler(c echo.Context) error {
	f := proto.ShaderFilter{
		Document: c.QueryParam("document"),
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.ParseUint(limit, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		f.Limit = uint(n)
	}
	shaders, err := api.repo.List(f)
	if err != nil {
		return handleError(err, c)
	}
	return c.JSON(http.StatusOK, shaders)
}

// GET <API_ROOT>/shaders/{shaderId}
func (api *API) getShaderHandler(c echo.Context) error {
	shader, err := api.repo.Get(c.Param("shaderId"))
	if err != nil {
		return handleError(err, c)
	}
	return c.JSON(http.StatusOK, shader)
}

// DELETE <API_ROOT>/shaders/{shaderId}
func (api *API) deleteShaderHandler(c echo.Context) error {
	if err := api.repo.Delete(c.Param("shaderId")); err != nil {
		return handleError(err, c)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET <API_ROOT>/graphs
// List documents the server can compile by name.
func (api *API) graphListHandler(c echo.Context) error {
	names := make([]string, 0, len(api.documents))
	for name := range api.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return c.JSON(http.StatusOK, names)
}

// GET <API_ROOT>/schema
func (api *API) schemaHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, Schema())
}

func (api *API) versionHandler(c echo.Context) error {
	return c.String(http.StatusOK, v.Version())
}

// Schema describes the documents this build accepts.
func Schema() proto.Schema {
	s := proto.Schema{
		Version:    document.CurrentVersion,
		Versions:   document.Chain().Versions(),
		NodeTypes:  []string{},
		Kinds:      []string{},
		Operators:  []string{},
		Precisions: []string{string(value.Float), string(value.Half)},
	}
	for name := range node.TypeValue {
		s.NodeTypes = append(s.NodeTypes, name)
	}
	for k, name := range value.KindName {
		if k == value.Unknown || k == value.Dynamic {
			continue
		}
		s.Kinds = append(s.Kinds, name)
	}
	for name := range node.OpValue {
		s.Operators = append(s.Operators, name)
	}
	sort.Strings(s.NodeTypes)
	sort.Strings(s.Kinds)
	sort.Strings(s.Operators)
	return s
}

// ------------------------------------------------------------------------- //

func handleError(err error, c echo.Context) error {
	ret := proto.Error{
		Message:    err.Error(),
		HTTPStatus: http.StatusInternalServerError,
	}

	switch e := err.(type) {
	case serr.ShaderNotFound:
		ret.Id = e.ShaderId
		ret.HTTPStatus = http.StatusNotFound
	case serr.GraphNotFound:
		ret.Id = e.Name
		ret.HTTPStatus = http.StatusNotFound
	case serr.ErrInvalidCreateShader:
		ret.HTTPStatus = http.StatusBadRequest
	case serr.InvalidDocument:
		ret.Id = e.Document
		ret.Problems = e.Problems
		ret.HTTPStatus = http.StatusUnprocessableEntity
	case serr.GenerationTimeout:
		ret.Id = e.Document
		ret.HTTPStatus = http.StatusGatewayTimeout
	}

	switch err {
	case store.ErrConflict:
		ret.HTTPStatus = http.StatusConflict
	case context.Canceled, context.DeadlineExceeded:
		ret.HTTPStatus = http.StatusServiceUnavailable
	}

	return c.JSON(ret.HTTPStatus, ret)
}
