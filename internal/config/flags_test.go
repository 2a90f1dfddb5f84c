// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5173}, expected: "localhost:5173"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests parsing of host:port values
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:5173", want: NetAddress{Host: "localhost", Port: 5173}},
		{name: "ip", input: "0.0.0.0:80", want: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "all interfaces", input: ":8081", want: NetAddress{Port: 8081}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags("web", []string{
		"-mode", "production",
		"-api-key", "k",
		"-api-base", "https://api.transport.nsw.gov.au",
		"-origin", "http://localhost:4000",
		"-a", "127.0.0.1:5173",
		"-request-timeout", "20s",
		"-root", "/srv/app",
		"-out-dir", "build",
		"-base", "/app/",
		"-relay-address", "localhost:8082",
		"-config", "/etc/bus-catch.json",
	})
	require.NoError(t, err)

	assert.Equal(t, ModeProduction, cfg.App.Mode)
	assert.Equal(t, "k", cfg.App.APIKey)
	assert.Equal(t, "https://api.transport.nsw.gov.au", cfg.App.APIBase)
	assert.Equal(t, "http://localhost:4000", cfg.App.Origin)
	assert.Equal(t, "127.0.0.1:5173", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/app", cfg.Build.Root)
	assert.Equal(t, "build", cfg.Build.OutDir)
	assert.Equal(t, "/app/", cfg.Build.Base)
	assert.Equal(t, "localhost:8082", cfg.Relay.HTTPAddress)
	assert.Equal(t, "/etc/bus-catch.json", cfg.JSONFilePath)
}

// TestParseFlags_NoArgs verifies that no flags produce a zero config.
func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags("web", nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_PositionalArgs(t *testing.T) {
	cfg, err := ParseFlags("fetch", []string{"-mode", "production", "/v1/tp/stop_finder", "name_sf=central"})
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, cfg.App.Mode)
	assert.Equal(t, []string{"/v1/tp/stop_finder", "name_sf=central"}, cfg.Args)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags("web", []string{"-a", "nowhere"})
	assert.Error(t, err)
}
