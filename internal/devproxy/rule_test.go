// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devproxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		target  string
		wantErr bool
	}{
		{name: "valid", prefix: "/api", target: "https://api.transport.nsw.gov.au"},
		{name: "root prefix", prefix: "/", target: "http://localhost:8081"},
		{name: "no leading slash", prefix: "api", target: "https://example.com", wantErr: true},
		{name: "trailing slash", prefix: "/api/", target: "https://example.com", wantErr: true},
		{name: "relative target", prefix: "/api", target: "/upstream", wantErr: true},
		{name: "bad target", prefix: "/api", target: "http://[::1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule(tt.prefix, tt.target, true)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, rule.Prefix)
			assert.True(t, rule.ChangeOrigin)
		})
	}
}

func TestRule_Match(t *testing.T) {
	rule, err := NewRule("/api", "https://api.transport.nsw.gov.au", true)
	require.NoError(t, err)

	assert.True(t, rule.Match("/api"))
	assert.True(t, rule.Match("/api/"))
	assert.True(t, rule.Match("/api/v1/tp/trip"))
	assert.False(t, rule.Match("/apix"))
	assert.False(t, rule.Match("/v1/api"))
	assert.False(t, rule.Match("/"))
}

func TestRule_Rewrite(t *testing.T) {
	rule, err := NewRule("/api", "https://api.transport.nsw.gov.au", true)
	require.NoError(t, err)

	tests := map[string]string{
		"/api/trip/v1/foo": "/trip/v1/foo",
		"/api":             "/",
		"/api/":            "/",
		"/api/api/x":       "/api/x",
	}
	for in, want := range tests {
		assert.Equal(t, want, rule.Rewrite(in), in)
	}
}
