// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses args with a fresh flag set named name.
//
// Flags:
//
//	-mode runtime mode (development|production)
//	-api-key transport API key
//	-api-base transport client base URL override
//	-origin serving origin for relative request paths
//	-a web server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-root project root
//	-out-dir build output directory
//	-base public base path
//	-relay-address relay address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags(name string, args []string) (*StructuredConfig, error) {
	var serverAddress, relayAddress NetAddress
	var mode string
	var apiKey, apiBase, origin string
	var requestTimeout time.Duration
	var root, outDir, base string
	var jsonConfigPath string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&mode, "mode", "", "Runtime mode (development|production)")
	fs.StringVar(&apiKey, "api-key", "", "Transport API key")
	fs.StringVar(&apiBase, "api-base", "", "Transport client base URL override")
	fs.StringVar(&origin, "origin", "", "Serving origin for relative request paths")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&root, "root", "", "Project root")
	fs.StringVar(&outDir, "out-dir", "", "Build output directory")
	fs.StringVar(&base, "base", "", "Public base path")
	fs.Var(&relayAddress, "relay-address", "Relay net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var rest []string
	if fs.NArg() > 0 {
		rest = fs.Args()
	}

	return &StructuredConfig{
		App: App{
			Mode:    Mode(mode),
			APIKey:  apiKey,
			APIBase: apiBase,
			Origin:  origin,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Build: Build{
			Root:   root,
			OutDir: outDir,
			Base:   base,
		},
		Relay: Relay{
			HTTPAddress: relayAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
		Args:         rest,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
