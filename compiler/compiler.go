// Copyright 2026, Square, Inc.

// Package compiler runs the whole pipeline for one graph document: parse,
// upgrade, check, build, validate and generate. Each document is compiled
// within a wall-clock budget; batches run on a bounded pool of workers.
package compiler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/orcaman/concurrent-map"
	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/codegen"
	"github.com/square/shadergraph/document"
	serr "github.com/square/shadergraph/errors"
	"github.com/square/shadergraph/id"
	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/value"
)

// Config bounds what one compile may do.
type Config struct {
	Precision       value.Precision // default when neither the job nor the document sets one
	MaxUpgradeSteps int             // 0 = length of the upgrade chain
	Timeout         time.Duration   // 0 = no budget
	Workers         int             // CompileAll concurrency, at least 1
}

// Job is one document to compile.
type Job struct {
	Name      string // document name if the document has none
	Data      []byte // YAML document of any known version
	Precision string // overrides the document and the default if set
}

// Outcome is the result of compiling one Job in a batch. Exactly one of
// Shader and Err is meaningful.
type Outcome struct {
	Shader proto.Shader
	Err    error
}

// Compiler compiles documents. It is safe for concurrent use.
type Compiler struct {
	cfg     Config
	checker *document.Checker
	idf     id.GeneratorFactory
	ids     id.Generator // shader ids
	run     func(Job) (proto.Shader, error)
}

func NewCompiler(cfg Config, checker *document.Checker, idf id.GeneratorFactory) *Compiler {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	c := &Compiler{
		cfg:     cfg,
		checker: checker,
		idf:     idf,
		ids:     idf.Make(),
	}
	c.run = c.compile
	return c
}

// Compile compiles one document. It returns errors.InvalidDocument if the
// document cannot be compiled at all and errors.GenerationTimeout if it took
// longer than the budget. A shader whose graph had nodes that could not be
// emitted is still returned, with state PARTIAL.
func (c *Compiler) Compile(ctx context.Context, job Job) (proto.Shader, error) {
	type result struct {
		shader proto.Shader
		err    error
	}
	done := make(chan result, 1) // the compile may finish after Compile returns
	go func() {
		s, err := c.run(job)
		done <- result{s, err}
	}()

	var timeout <-chan time.Time
	if c.cfg.Timeout > 0 {
		timer := time.NewTimer(c.cfg.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case r := <-done:
		return r.shader, r.err
	case <-timeout:
		log.WithFields(log.Fields{"document": job.Name, "timeout": c.cfg.Timeout}).Warn("generation timed out")
		return proto.Shader{}, serr.GenerationTimeout{Document: job.Name, Timeout: c.cfg.Timeout}
	case <-ctx.Done():
		return proto.Shader{}, ctx.Err()
	}
}

// CompileAll compiles every job on at most Config.Workers goroutines and
// returns the outcomes keyed by job name. Job names must be unique.
func (c *Compiler) CompileAll(ctx context.Context, jobs []Job) map[string]Outcome {
	outcomes := cmap.New()
	jobChan := make(chan Job)

	var wg sync.WaitGroup
	for i := 0; i < c.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				s, err := c.Compile(ctx, job)
				outcomes.Set(job.Name, Outcome{Shader: s, Err: err})
			}
		}()
	}

SEND:
	for _, job := range jobs {
		select {
		case jobChan <- job:
		case <-ctx.Done():
			break SEND
		}
	}
	close(jobChan)
	wg.Wait()

	ret := make(map[string]Outcome, len(jobs))
	for _, job := range jobs {
		if v, ok := outcomes.Get(job.Name); ok {
			ret[job.Name] = v.(Outcome)
		} else {
			ret[job.Name] = Outcome{Err: ctx.Err()} // never sent
		}
	}
	return ret
}

func (c *Compiler) compile(job Job) (proto.Shader, error) {
	logger := log.WithFields(log.Fields{"document": job.Name})
	warnings := []string{}
	logFunc := func(format string, args ...interface{}) {
		warnings = append(warnings, strings.TrimSpace(fmt.Sprintf(format, args...)))
	}
	invalid := func(name string, problems ...string) error {
		logger.WithField("problems", len(problems)).Info("invalid document")
		return serr.InvalidDocument{Document: name, Problems: problems}
	}

	// Parse and upgrade to the current shape
	doc, err := document.Parse(job.Data, job.Name, logFunc)
	if err != nil {
		return proto.Shader{}, invalid(job.Name, err.Error())
	}
	name := doc.DocumentId()
	d, steps, err := document.Upgrade(doc, c.cfg.MaxUpgradeSteps)
	if err != nil {
		return proto.Shader{}, invalid(name, err.Error())
	}

	// Static checks. Errors are fatal, warnings are reported with the shader.
	results := c.checker.Check(d)
	if r, ok := results.Get(d.Name); ok {
		if len(r.Errors) > 0 {
			return proto.Shader{}, invalid(name, messages(r.Errors)...)
		}
		warnings = append(warnings, messages(r.Warnings)...)
	}

	precision := job.Precision
	if precision == "" {
		precision = d.Precision
	}
	p := c.cfg.Precision
	if p == "" {
		p = value.Float
	}
	if precision != "" {
		if p, err = value.ParsePrecision(precision); err != nil {
			return proto.Shader{}, invalid(name, err.Error())
		}
	}

	g, err := document.Build(d, c.idf.Make())
	if err != nil {
		return proto.Shader{}, invalid(name, err.Error())
	}
	for _, problem := range g.Validate() {
		warnings = append(warnings, problem.String())
	}

	s := proto.Shader{
		Document:  name,
		Version:   doc.Version(),
		Upgrades:  steps,
		Precision: string(p),
		State:     proto.STATE_COMPLETE,
	}
	res, err := codegen.NewGenerator(p).Generate(g)
	if err != nil {
		errs, ok := err.(codegen.Errors)
		if !ok {
			return proto.Shader{}, invalid(name, err.Error()) // cycle
		}
		s.Errors = messages(errs)
		s.State = proto.STATE_PARTIAL
	}
	if len(res.Skipped) > 0 {
		s.State = proto.STATE_PARTIAL
	}
	s.Source = res.Source
	s.Properties = res.Properties
	s.PropertyBlock = codegen.PropertyBlock(res.Properties)
	s.Skipped = res.Skipped
	s.Warnings = append(warnings, messages(res.Warnings)...)
	if len(s.Warnings) == 0 {
		s.Warnings = nil
	}

	if s.Id, err = c.ids.UID(); err != nil {
		return proto.Shader{}, err
	}
	s.CreatedAt = time.Now().UTC()

	logger.WithFields(log.Fields{
		"shader":   s.Id,
		"state":    proto.StateName[s.State],
		"upgrades": steps,
	}).Info("compiled document")
	return s, nil
}

func messages(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return msgs
}
