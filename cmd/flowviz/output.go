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
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// normalizeLocation turns a plain path into a file:// URL and leaves URLs
// with a scheme untouched.
func normalizeLocation(location string) string {
	if strings.Contains(location, "://") {
		return location
	}
	return url.Normalize(location, file.Scheme)
}

// encodePNG encodes a three-channel [0, 1] image as an 8-bit PNG.
func encodePNG(img *image.Image[float32]) ([]byte, error) {
	nrgba, err := image.ToNRGBA(img)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgba); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// writePNG encodes img and uploads it to location.
func (a *app) writePNG(ctx context.Context, location string, img *image.Image[float32]) error {
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	target := normalizeLocation(location)
	if err := a.fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	a.debugf("wrote %dx%d image (%d bytes) to %s", img.Width(), img.Height(), len(data), target)
	return nil
}
