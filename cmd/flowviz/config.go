// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ajroetker/go-flowviz/hwy/contrib/flow"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// renderConfig holds the settings of a render, read from YAML and
// overridden by flags.
type renderConfig struct {
	Pattern   string  `yaml:"pattern"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Scale     float64 `yaml:"scale"`
	Normalize bool    `yaml:"normalize"`
	Workers   int     `yaml:"workers"`
	Output    string  `yaml:"output"`
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		Pattern: string(flow.PatternRamp),
		Width:   100,
		Height:  100,
		Scale:   1,
		Workers: 1,
		Output:  "converted.png",
	}
}

// loadRenderConfig decodes the YAML document at location over cfg, so
// keys missing from the file keep their current values.
func loadRenderConfig(ctx context.Context, fs afs.Service, location string, cfg *renderConfig) error {
	data, err := fs.DownloadWithURL(ctx, normalizeLocation(location))
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", location, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", location, err)
	}
	return nil
}

// applyFlags copies the flags set on the command line from flagged to cfg.
func applyFlags(flags *pflag.FlagSet, flagged renderConfig, cfg *renderConfig) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "pattern":
			cfg.Pattern = flagged.Pattern
		case "width":
			cfg.Width = flagged.Width
		case "height":
			cfg.Height = flagged.Height
		case "scale":
			cfg.Scale = flagged.Scale
		case "normalize":
			cfg.Normalize = flagged.Normalize
		case "workers":
			cfg.Workers = flagged.Workers
		case "output":
			cfg.Output = flagged.Output
		}
	})
}

func (c renderConfig) validate() error {
	if !lo.Contains(flow.Patterns(), flow.Pattern(c.Pattern)) {
		return fmt.Errorf("%w: %q (want one of %s)", flow.ErrUnknownPattern, c.Pattern, patternList())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Workers)
	}
	if c.Output == "" {
		return fmt.Errorf("output location is empty")
	}
	return nil
}

func patternList() string {
	return strings.Join(lo.Map(flow.Patterns(), func(p flow.Pattern, _ int) string {
		return string(p)
	}), ", ")
}
