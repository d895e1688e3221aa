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
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxComponent is the largest value any single component may hold.
const MaxComponent = math.MaxInt32

// componentCount is the number of dot-separated components in a version.
const componentCount = 4

// ErrFormat is wrapped by every parsing failure so callers can test for
// malformed version text with errors.Is.
var ErrFormat = errors.New("invalid version format")

// Error types for version parsing and increment failures
var (
	ErrEmptyVersion      = fmt.Errorf("%w: version string is empty", ErrFormat)
	ErrComponentCount    = fmt.Errorf("%w: version must have exactly 4 components", ErrFormat)
	ErrNonNumeric        = fmt.Errorf("%w: version component is not numeric", ErrFormat)
	ErrComponentOverflow = errors.New("version component exceeds maximum value")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a four component version number (Major.Minor.Build.Revision).
// It is a value type; every update returns a new Version.
type Version struct {
	Major    int `json:"major" yaml:"major"`
	Minor    int `json:"minor" yaml:"minor"`
	Build    int `json:"build" yaml:"build"`
	Revision int `json:"revision" yaml:"revision"`
}

// New creates a Version from explicit component values.
func New(major, minor, build, revision int) Version {
	return Version{
		Major:    major,
		Minor:    minor,
		Build:    build,
		Revision: revision,
	}
}

// String returns the canonical form, always rendering all four components.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Parse parses text of the form "1.2.3.4" into a Version.
// Surrounding whitespace is trimmed. Exactly four components are required,
// each made of ASCII digits and no larger than MaxComponent.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	parts := strings.Split(s, ".")
	if len(parts) != componentCount {
		return Version{}, fmt.Errorf("%w: got %d in %q", ErrComponentCount, len(parts), s)
	}

	var nums [componentCount]int
	for i, part := range parts {
		num, err := parseComponent(part)
		if err != nil {
			return Version{}, err
		}
		nums[i] = num
	}

	return New(nums[0], nums[1], nums[2], nums[3]), nil
}

func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty component", ErrNonNumeric)
	}
	// strconv accepts a leading sign, a version component does not
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
	}
	num, err := strconv.ParseInt(part, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q", ErrFormat, ErrComponentOverflow, part)
	}
	return int(num), nil
}

// MustParse parses a version string and panics if parsing fails.
//
// Only use this for hardcoded strings or in tests. For file content or user
// input, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Increment returns a copy of current with the selected component increased
// by amount. The other three components are copied unchanged. Amount may be
// any integer; a result outside [0, MaxComponent] is rejected rather than
// wrapped or clamped.
func Increment(current Version, amount int, c Component) (Version, error) {
	if !c.IsValid() {
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownComponent, string(c))
	}

	next := int64(current.Get(c)) + int64(amount)
	switch {
	case next > MaxComponent:
		return Version{}, fmt.Errorf("%w: %s %d + %d", ErrComponentOverflow, c, current.Get(c), amount)
	case next < 0:
		return Version{}, fmt.Errorf("%w: %s %d + %d", ErrNegativeComponent, c, current.Get(c), amount)
	}

	return current.with(c, int(next)), nil
}

// Get returns the value of the selected component.
// Unknown components return 0.
func (v Version) Get(c Component) int {
	switch c {
	case Major:
		return v.Major
	case Minor:
		return v.Minor
	case Build:
		return v.Build
	case Revision:
		return v.Revision
	default:
		return 0
	}
}

func (v Version) with(c Component, value int) Version {
	switch c {
	case Major:
		v.Major = value
	case Minor:
		v.Minor = value
	case Build:
		v.Build = value
	case Revision:
		v.Revision = value
	}
	return v
}

// Equals returns true if v and other match component-wise.
func (v Version) Equals(other Version) bool {
	return v == other
}

// IsValid returns true if every component is within [0, MaxComponent].
func (v Version) IsValid() bool {
	for _, n := range []int{v.Major, v.Minor, v.Build, v.Revision} {
		if n < 0 || n > MaxComponent {
			return false
		}
	}
	return true
}
