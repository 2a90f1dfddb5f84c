// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devproxy

import (
	"net/http"
	"net/http/httputil"

	"github.com/MKhiriev/bus-catch/internal/logger"
	"github.com/MKhiriev/bus-catch/internal/utils"
)

type proxy struct {
	rules   []Rule
	proxies []*httputil.ReverseProxy
	next    http.Handler
	logger  *logger.Logger
}

// New returns a handler that forwards requests matching one of rules and
// hands everything else to next. The first matching rule wins.
//
// Upstream connection failures answer 502 Bad Gateway.
func New(rules []Rule, next http.Handler, log *logger.Logger) http.Handler {
	p := &proxy{
		rules:   rules,
		proxies: make([]*httputil.ReverseProxy, len(rules)),
		next:    next,
		logger:  log,
	}
	for i, rule := range rules {
		p.proxies[i] = p.reverseProxy(rule)
	}

	return p
}

func (p *proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for i, rule := range p.rules {
		if rule.Match(r.URL.Path) {
			p.proxies[i].ServeHTTP(w, r)
			return
		}
	}

	p.next.ServeHTTP(w, r)
}

func (p *proxy) reverseProxy(rule Rule) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = rule.Rewrite(pr.In.URL.Path)
			if pr.In.URL.RawPath != "" {
				pr.Out.URL.RawPath = rule.Rewrite(pr.In.URL.RawPath)
			}
			pr.SetURL(rule.Target)

			if !rule.ChangeOrigin {
				pr.Out.Host = pr.In.Host
				return
			}
			if pr.In.Header.Get("Origin") != "" {
				pr.Out.Header.Set("Origin", rule.origin())
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.logger.Err(err).
				Str("path", r.URL.Path).
				Str("target", rule.Target.String()).
				Msg("dev proxy request failed")

			utils.WriteError(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		},
	}
}
