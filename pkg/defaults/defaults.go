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

package defaults

import "os"

// Version file defaults.
const (
	// Version is the value assumed when the version file is absent or empty.
	// Build starts at 1 so the first increment yields 0.0.2.0.
	Version = "0.0.1.0"

	// Action is the action performed when none is requested.
	Action = "Increment"

	// Component is the component incremented when none is requested.
	Component = "Build"

	// Increment is the amount added when none is requested.
	Increment = 1

	// Encoding is the encoding used to write the version file when the
	// caller did not choose one and the file carries no byte-order marker.
	Encoding = "ascii"
)

// File handling limits.
const (
	// MaxFileSize is the largest version file that will be read.
	MaxFileSize = 1 << 20 // 1MB

	// FileMode is the permission set for newly created version files.
	FileMode os.FileMode = 0o644

	// MaxConcurrentReads bounds how many files a multi-file query reads at once.
	MaxConcurrentReads = 8
)

// CLI defaults.
const (
	// ConfigFileName is the config file discovered in the working directory
	// and the user's home directory.
	ConfigFileName = ".fileversion.yaml"

	// OutputFormat is the default output format for command results.
	OutputFormat = "yaml"

	// LogLevel is the default log level.
	LogLevel = "info"
)
