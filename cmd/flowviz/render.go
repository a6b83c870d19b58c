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
	"time"

	"github.com/ajroetker/go-flowviz/hwy"
	"github.com/ajroetker/go-flowviz/hwy/contrib/flow"
	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/ajroetker/go-flowviz/hwy/contrib/workerpool"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var configPath string
	flagged := defaultRenderConfig()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Synthesise a flow field and write it as a colour PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultRenderConfig()
			if configPath != "" {
				if err := loadRenderConfig(cmd.Context(), a.fs, configPath, &cfg); err != nil {
					return err
				}
			}
			applyFlags(cmd.Flags(), flagged, &cfg)
			if err := cfg.validate(); err != nil {
				return err
			}
			return a.render(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML file or URL with render settings")
	flags.StringVar(&flagged.Pattern, "pattern", flagged.Pattern, "flow pattern: "+patternList())
	flags.IntVar(&flagged.Width, "width", flagged.Width, "field width in pixels")
	flags.IntVar(&flagged.Height, "height", flagged.Height, "field height in pixels")
	flags.Float64Var(&flagged.Scale, "scale", flagged.Scale, "multiply every flow vector by this factor")
	flags.BoolVar(&flagged.Normalize, "normalize", flagged.Normalize, "scale the field so the longest vector has length 1")
	flags.IntVar(&flagged.Workers, "workers", flagged.Workers, "parallel workers; 0 uses GOMAXPROCS")
	flags.StringVarP(&flagged.Output, "output", "o", flagged.Output, "output path or URL")
	return cmd
}

func (a *app) render(ctx context.Context, cfg renderConfig) error {
	field, err := a.buildField(cfg)
	if err != nil {
		return err
	}

	var pool *workerpool.Pool
	if cfg.Workers != 1 {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	start := time.Now()
	rgb, err := flow.ParallelFlowToColor(pool, field, cfg.Normalize)
	if err != nil {
		return err
	}
	a.debugf("coloured %dx%d field in %v (%s lanes)", cfg.Width, cfg.Height, time.Since(start), hwy.CurrentName())
	return a.writePNG(ctx, cfg.Output, rgb)
}

// buildField synthesises the configured pattern and applies scaling and
// normalisation.
func (a *app) buildField(cfg renderConfig) (*image.Image[float32], error) {
	field, err := flow.Synthesize[float32](flow.Pattern(cfg.Pattern), cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Scale != 1 {
		if err := flow.Scale(field, float32(cfg.Scale)); err != nil {
			return nil, err
		}
	}
	if cfg.Normalize {
		maxRad, err := flow.Normalize(field)
		if err != nil {
			return nil, err
		}
		a.debugf("normalised by max magnitude %g", maxRad)
	}
	return field, nil
}
