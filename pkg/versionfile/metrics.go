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
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
)

const operationGet = "get"

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fileversion_operations_total",
			Help: "Total number of version file operations by action and result",
		},
		[]string{"action", "result"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fileversion_operation_duration_seconds",
			Help:    "Duration of version file operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	writesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fileversion_writes_total",
			Help: "Total number of version file writes",
		},
	)

	attributeTogglesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fileversion_attribute_toggles_total",
			Help: "Total number of read-only attributes cleared for a write",
		},
	)
)

// observe records the outcome of one operation.
func observe(action string, start time.Time, err error) {
	operationDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	operationsTotal.WithLabelValues(action, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	if code := fverrors.CodeOf(err); code != "" {
		return strings.ToLower(string(code))
	}
	return "error"
}
