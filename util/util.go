// Copyright 2017-2026, Square, Inc.

// Package util provides helpers shared by the server, client and CLI.
package util

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"io/ioutil"
)

// NewTLSConfig takes a cert, key, and ca file and creates a *tls.Config.
func NewTLSConfig(caFile, certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tls.LoadX509KeyPair: %s", err)
	}

	caCert, err := ioutil.ReadFile(caFile)
	if err != nil {
		return nil, err
	}
	caCertPool := x509.NewCertPool()
	caCertPool.AppendCertsFromPEM(caCert)
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caCertPool,
	}

	return tlsConfig, nil
}

// ReadInput reads the named file, or all of stdin if file is "-".
func ReadInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "-" {
		return ioutil.ReadAll(stdin)
	}
	return ioutil.ReadFile(file)
}
