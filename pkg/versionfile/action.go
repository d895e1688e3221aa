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
	"fmt"
	"strings"

	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
)

// Action is a mutating operation on a version file.
type Action string

const (
	// ActionIncrement adds an amount to one component of the stored version.
	ActionIncrement Action = "Increment"
	// ActionReset replaces the stored version with an explicit value.
	ActionReset Action = "Reset"
)

// String returns the action name.
func (a Action) String() string {
	return string(a)
}

// IsValid returns true for the known actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionIncrement, ActionReset:
		return true
	default:
		return false
	}
}

// SupportedActions returns the names of all known actions.
func SupportedActions() []string {
	return []string{
		string(ActionIncrement),
		string(ActionReset),
	}
}

// ParseAction resolves an action name case-insensitively.
// Unknown names fail with an INVALID_ACTION error.
func ParseAction(s string) (Action, error) {
	trimmed := strings.TrimSpace(s)
	for _, name := range SupportedActions() {
		if strings.EqualFold(trimmed, name) {
			return Action(name), nil
		}
	}
	return "", fverrors.NewWithContext(fverrors.ErrCodeInvalidAction,
		fmt.Sprintf("invalid action %q, supported values: %v", s, SupportedActions()),
		map[string]any{"action": s})
}
