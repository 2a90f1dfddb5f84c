// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devproxy forwards development-server requests under a path prefix
// to an upstream origin, so the browser talks to a single origin and the
// upstream never sees a cross-origin request.
//
// Only the development build of the web server imports this package.
package devproxy

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidRule is returned by [NewRule] for a prefix or target that cannot
// be proxied.
var ErrInvalidRule = errors.New("invalid proxy rule")

// Rule forwards every request whose path is under Prefix to Target.
type Rule struct {
	// Prefix is matched at a path segment boundary and stripped once.
	Prefix string
	// Target is the upstream origin. Its path, if any, is prepended to the
	// rewritten request path.
	Target *url.URL
	// ChangeOrigin rewrites the outbound Host and Origin headers to the
	// target's.
	ChangeOrigin bool
}

// NewRule parses target and validates prefix.
func NewRule(prefix, target string, changeOrigin bool) (Rule, error) {
	if !strings.HasPrefix(prefix, "/") || (len(prefix) > 1 && strings.HasSuffix(prefix, "/")) {
		return Rule{}, fmt.Errorf("%w: prefix %q must start and not end with /", ErrInvalidRule, prefix)
	}

	u, err := url.Parse(target)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: target %q: %v", ErrInvalidRule, target, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Rule{}, fmt.Errorf("%w: target %q must be an absolute URL", ErrInvalidRule, target)
	}

	return Rule{Prefix: prefix, Target: u, ChangeOrigin: changeOrigin}, nil
}

// Match reports whether path is the prefix itself or lies below it.
// "/apix" does not match the prefix "/api".
func (r Rule) Match(path string) bool {
	if path == r.Prefix {
		return true
	}
	return strings.HasPrefix(path, r.Prefix+"/")
}

// Rewrite removes exactly one leading Prefix from path. The root is returned
// when nothing remains.
func (r Rule) Rewrite(path string) string {
	rest := strings.TrimPrefix(path, r.Prefix)
	if rest == "" {
		return "/"
	}
	return rest
}

// origin returns the target as scheme://host.
func (r Rule) origin() string {
	return r.Target.Scheme + "://" + r.Target.Host
}
