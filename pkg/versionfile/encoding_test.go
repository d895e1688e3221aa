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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
	"github.com/NVIDIA/fileversion/pkg/version"
)

func utf16LE(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}
	return out
}

func utf16BE(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		out = append(out, 0x00, s[i])
	}
	return out
}

func TestResolveEncoding(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantErr  bool
	}{
		{"", EncodingASCII, false},
		{"ascii", EncodingASCII, false},
		{"US-ASCII", EncodingASCII, false},
		{"utf-8", EncodingUTF8, false},
		{"UTF8", EncodingUTF8, false},
		{"utf-8-bom", EncodingUTF8BOM, false},
		{"utf-16", EncodingUTF16, false},
		{"utf-16be-bom", EncodingUTF16BE, false},
		{"utf-16le", "utf-16le", false},
		{"latin1", "windows-1252", false},
		{"ebcdic-klingon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			te, err := resolveEncoding(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, fverrors.ErrCodeFormat, fverrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, te.name)
			assert.NotNil(t, te.enc)

			enc, err := ResolveEncoding(tt.input)
			require.NoError(t, err)
			assert.NotNil(t, enc)
		})
	}
}

func TestDetectBOM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wantName string
		wantOK   bool
	}{
		{"utf-8", append([]byte{0xEF, 0xBB, 0xBF}, "1.0.0.0"...), EncodingUTF8BOM, true},
		{"utf-16le", append([]byte{0xFF, 0xFE}, utf16LE("1.0.0.0")...), EncodingUTF16, true},
		{"utf-16be", append([]byte{0xFE, 0xFF}, utf16BE("1.0.0.0")...), EncodingUTF16BE, true},
		{"none", []byte("1.0.0.0"), "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te, ok := detectBOM(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, te.name)
		})
	}
}

func TestDecode(t *testing.T) {
	ascii, err := resolveEncoding(EncodingASCII)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain", []byte("1.2.3.4\n"), "1.2.3.4\n"},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "1.2.3.4"...), "1.2.3.4"},
		{"utf-16le bom", append([]byte{0xFF, 0xFE}, utf16LE("1.2.3.4")...), "1.2.3.4"},
		{"utf-16be bom", append([]byte{0xFE, 0xFF}, utf16BE("1.2.3.4")...), "1.2.3.4"},
		{"bom only", []byte{0xEF, 0xBB, 0xBF}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode(tt.input, ascii)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "1.0.0.0", firstLine("1.0.0.0"))
	assert.Equal(t, "1.0.0.0\r", firstLine("1.0.0.0\r\n2.0.0.0"))
	assert.Equal(t, "", firstLine("\n1.0.0.0"))
}

func TestIncrementPreservesBOMEncoding(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    []byte
		encName string
	}{
		{
			name:    "utf-8 bom",
			content: append([]byte{0xEF, 0xBB, 0xBF}, "1.0.0.0"...),
			want:    append([]byte{0xEF, 0xBB, 0xBF}, "1.0.1.0"...),
			encName: EncodingUTF8BOM,
		},
		{
			name:    "utf-16le bom",
			content: append([]byte{0xFF, 0xFE}, utf16LE("1.0.0.0")...),
			want:    append([]byte{0xFF, 0xFE}, utf16LE("1.0.1.0")...),
			encName: EncodingUTF16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeVersionFile(t, tt.content, 0o644)

			res, err := newFile(t, path).Increment(context.Background(), 1, version.Build)
			require.NoError(t, err)
			assert.Equal(t, "1.0.1.0", res.Version)
			assert.Equal(t, tt.encName, res.Encoding)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExplicitEncodingOverridesBOM(t *testing.T) {
	path := writeVersionFile(t, append([]byte{0xEF, 0xBB, 0xBF}, "1.0.0.0"...), 0o644)

	res, err := newFile(t, path, WithEncoding("ascii")).Increment(context.Background(), 1, version.Revision)
	require.NoError(t, err)
	assert.Equal(t, EncodingASCII, res.Encoding)
	assert.Equal(t, "1.0.0.1", readContent(t, path))
}

func TestWriteWithEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)

	_, err := newFile(t, path, WithEncoding("utf-16")).Reset(context.Background(), version.New(2, 0, 0, 0))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xFF, 0xFE}, utf16LE("2.0.0.0")...), got)

	// reading back with the default encoding honors the marker
	res, err := newFile(t, path).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0.0", res.Version)
	assert.Equal(t, EncodingUTF16, res.Encoding)
}

func TestResetPreservesBOMEncoding(t *testing.T) {
	path := writeVersionFile(t, append([]byte{0xEF, 0xBB, 0xBF}, "1.0.0.0"...), 0o644)

	_, err := newFile(t, path).Reset(context.Background(), version.New(9, 0, 0, 0))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, "9.0.0.0"...), got)
}
