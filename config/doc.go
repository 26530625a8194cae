/*
Copyright 2017-2026, Square, Inc.

Package config provides the ability to load config files into predefined
structures used by the shader compiler. The server and the shaderc CLI both
use the Compiler struct.

Types of config structs provided by this package:

* Compiler: all of the config needed to compile documents and run the compile
  API (precision, upgrade and time budgets, worker count, repo backend)

* Server: the configuration for running a webserver (ex: the listen address
  the server should run on, the TLS config the server should run with)

* SQLDb: the configuration for connecting to MySQL (the DSN and the TLS config
  to use when connecting to the server)

* TLS: cert, key and CA files, shared by the server, the database connection
  and the shaderc client

Start from Defaults() and Load a YAML file over it:

	cfg := config.Defaults()
	if err := config.Load("shaderc.yaml", &cfg); err != nil {
		...
	}
*/
package config
