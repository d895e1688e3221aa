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

// Package version provides the four component build version value used by
// fileversion: Major.Minor.Build.Revision.
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("1.2.3.4")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3.4
//
// Increment a single component:
//
//	next, err := version.Increment(v, 1, version.Build)
//	fmt.Println(next) // Output: 1.2.4.4
//
// Increment never resets lower components; only the selected component
// changes.
//
// # Error Handling
//
// All parsing failures wrap ErrFormat:
//
//   - ErrEmptyVersion: input is empty or whitespace
//   - ErrComponentCount: not exactly four components
//   - ErrNonNumeric: a component contains anything but ASCII digits
//   - ErrComponentOverflow: a component does not fit in 32 bits
//
// Increment returns ErrComponentOverflow or ErrNegativeComponent when the
// result would leave the valid range, and ErrUnknownComponent for an
// unrecognized component.
package version
