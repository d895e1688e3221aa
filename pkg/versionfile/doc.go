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

// Package versionfile persists a four component build version in a text file.
//
// The first line of the file holds the version in canonical form
// ("1.0.3.0"). Each mutating call runs one read-modify-write pass:
//
//  1. Locate: create the file empty if it does not exist
//  2. Unlock: clear the read-only attribute if set, remembering that it was
//  3. Apply: Increment reads, computes and writes only on change; Reset
//     writes unconditionally
//  4. Relock: restore the read-only attribute, even if Apply failed
//
// An absent or empty file is read as 0.0.1.0. Malformed content is never
// replaced by a default; it fails with a FORMAT error.
//
// # Usage
//
//	f, err := versionfile.New("VERSION")
//	if err != nil {
//	    return err
//	}
//	res, err := f.Increment(ctx, 1, version.Build)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Version)
//
// Host adapters that receive string parameters use Execute:
//
//	res, err := f.Execute(ctx, versionfile.Request{
//	    Action: "Increment",
//	    Part:   "Revision",
//	})
//
// An unset Request.Increment adds 1.
//
// # Encoding
//
// Files are written in ASCII unless WithEncoding selects another encoding.
// On read, a UTF-8 or UTF-16 byte-order marker is honored and, when no
// encoding was chosen explicitly, preserved on write.
//
// # Concurrency
//
// No locking is performed. Callers must not run two writers against the
// same path at the same time.
package versionfile
