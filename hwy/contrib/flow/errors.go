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

package flow

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-flowviz/hwy/contrib/image"
)

var (
	// ErrConfiguration is returned when wheel segments do not describe a
	// usable wheel. It signals a code defect, so retrying cannot help.
	ErrConfiguration = errors.New("flow: invalid wheel configuration")

	// ErrInvalidShape is returned when a flow field does not have two
	// channels or an output image does not match it.
	ErrInvalidShape = image.ErrInvalidShape

	// ErrUnknownPattern is returned by Synthesize for an unrecognised pattern.
	ErrUnknownPattern = errors.New("flow: unknown pattern")
)

// ConfigError reports a rejected wheel configuration.
// It unwraps to ErrConfiguration.
type ConfigError struct {
	Total  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %d entries: %s", ErrConfiguration, e.Total, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
