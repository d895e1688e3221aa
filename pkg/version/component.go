// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package version

import (
	"fmt"
	"strings"
)

// ErrUnknownComponent is returned for component names outside
// Major, Minor, Build and Revision.
var ErrUnknownComponent = fmt.Errorf("%w: unknown version component", ErrFormat)

// Component selects which field of a Version an increment targets.
type Component string

const (
	Major    Component = "Major"
	Minor    Component = "Minor"
	Build    Component = "Build"
	Revision Component = "Revision"
)

// String returns the component name.
func (c Component) String() string {
	return string(c)
}

// IsValid returns true for the four known components.
func (c Component) IsValid() bool {
	switch c {
	case Major, Minor, Build, Revision:
		return true
	default:
		return false
	}
}

// SupportedComponents returns the component names in significance order.
func SupportedComponents() []string {
	return []string{
		string(Major),
		string(Minor),
		string(Build),
		string(Revision),
	}
}

// ParseComponent resolves a component name case-insensitively.
func ParseComponent(s string) (Component, error) {
	trimmed := strings.TrimSpace(s)
	for _, name := range SupportedComponents() {
		if strings.EqualFold(trimmed, name) {
			return Component(name), nil
		}
	}
	return "", fmt.Errorf("%w: %q, supported values: %v", ErrUnknownComponent, s, SupportedComponents())
}
