// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Mode    string `json:"mode"`
		APIKey  string `json:"api_key"`
		APIBase string `json:"api_base"`
		Origin  string `json:"origin"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Build struct {
		Root      string `json:"root"`
		SrcDir    string `json:"src_dir"`
		PublicDir string `json:"public_dir"`
		OutDir    string `json:"out_dir"`
		AssetsDir string `json:"assets_dir"`
		Base      string `json:"base"`
	} `json:"build,omitempty"`

	Proxy struct {
		Prefix string `json:"prefix"`
		Target string `json:"target"`
	} `json:"proxy,omitempty"`

	Relay struct {
		HTTPAddress string `json:"http_address"`
		Upstream    string `json:"upstream"`
		APIKey      string `json:"api_key"`
	} `json:"relay,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:    Mode(jsonCfg.App.Mode),
			APIKey:  jsonCfg.App.APIKey,
			APIBase: jsonCfg.App.APIBase,
			Origin:  jsonCfg.App.Origin,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Build: Build{
			Root:      jsonCfg.Build.Root,
			SrcDir:    jsonCfg.Build.SrcDir,
			PublicDir: jsonCfg.Build.PublicDir,
			OutDir:    jsonCfg.Build.OutDir,
			AssetsDir: jsonCfg.Build.AssetsDir,
			Base:      jsonCfg.Build.Base,
		},
		Proxy: Proxy{
			Prefix: jsonCfg.Proxy.Prefix,
			Target: jsonCfg.Proxy.Target,
		},
		Relay: Relay{
			HTTPAddress: jsonCfg.Relay.HTTPAddress,
			Upstream:    jsonCfg.Relay.Upstream,
			APIKey:      jsonCfg.Relay.APIKey,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
