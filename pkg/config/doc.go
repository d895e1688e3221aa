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

// Package config loads fileversion CLI defaults from a YAML or JSON file.
//
// The default file is .fileversion.yaml, looked up in the working directory
// and then in the user's home directory:
//
//	file: VERSION
//	part: build
//	increment: 1
//	encoding: ascii
//	format: yaml
//	logLevel: info
//
// Values here sit below flags and FILEVERSION_* environment variables.
package config
