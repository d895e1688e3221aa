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

package versionfile

import (
	"github.com/NVIDIA/fileversion/pkg/version"
)

// Result reports the outcome of one operation on a version file.
// It is only returned on success.
type Result struct {
	Path     string `json:"path" yaml:"path"`
	Action   Action `json:"action,omitempty" yaml:"action,omitempty"`
	Version  string `json:"version" yaml:"version"`
	Major    int    `json:"major" yaml:"major"`
	Minor    int    `json:"minor" yaml:"minor"`
	Build    int    `json:"build" yaml:"build"`
	Revision int    `json:"revision" yaml:"revision"`

	// Previous is the value read before the action, empty for Reset.
	Previous string `json:"previous,omitempty" yaml:"previous,omitempty"`

	Written  bool   `json:"written" yaml:"written"`
	Created  bool   `json:"created,omitempty" yaml:"created,omitempty"`
	ReadOnly bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

func newResult(path string, v version.Version) *Result {
	return &Result{
		Path:     path,
		Version:  v.String(),
		Major:    v.Major,
		Minor:    v.Minor,
		Build:    v.Build,
		Revision: v.Revision,
	}
}

// Value returns the resulting version.
func (r *Result) Value() version.Version {
	return version.New(r.Major, r.Minor, r.Build, r.Revision)
}
