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

// Package defaults provides centralized configuration constants for fileversion.
//
// This package defines the default version, action, component, encoding,
// and the file handling limits used across the codebase. Centralizing these
// values keeps the library, the CLI flags and the config file loader in
// agreement.
//
// # Usage
//
//	import "github.com/NVIDIA/fileversion/pkg/defaults"
//
//	v := version.MustParse(defaults.Version)
package defaults
