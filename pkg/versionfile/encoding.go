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
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
)

// Encoding names with meaning beyond the WHATWG index.
const (
	EncodingASCII   = "ascii"
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-bom"
	EncodingUTF16   = "utf-16"
	EncodingUTF16BE = "utf-16be-bom"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// textEncoding pairs an encoding with the name reported in results.
type textEncoding struct {
	name string
	enc  encoding.Encoding
}

// ResolveEncoding maps an encoding name to a text encoding.
// An empty name resolves to ASCII. Names are looked up in the WHATWG
// encoding index after the BOM-emitting aliases utf-8-bom, utf-16 and
// utf-16be-bom.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	te, err := resolveEncoding(name)
	if err != nil {
		return nil, err
	}
	return te.enc, nil
}

func resolveEncoding(name string) (textEncoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", EncodingASCII, "us-ascii":
		// WHATWG maps ASCII labels to windows-1252, which is byte-identical
		// for the digits and dots of a version string.
		enc, _ := htmlindex.Get("us-ascii")
		return textEncoding{name: EncodingASCII, enc: enc}, nil
	case EncodingUTF8BOM:
		return textEncoding{name: EncodingUTF8BOM, enc: unicode.UTF8BOM}, nil
	case EncodingUTF16:
		return textEncoding{name: EncodingUTF16, enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, nil
	case EncodingUTF16BE:
		return textEncoding{name: EncodingUTF16BE, enc: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)}, nil
	}

	enc, err := htmlindex.Get(key)
	if err != nil {
		return textEncoding{}, fverrors.WrapWithContext(fverrors.ErrCodeFormat,
			fmt.Sprintf("unknown encoding %q", name), err,
			map[string]any{"encoding": name})
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = key
	}
	return textEncoding{name: canonical, enc: enc}, nil
}

// detectBOM returns the encoding announced by a byte-order marker at the
// start of b. UTF-8 is checked first so its marker is never mistaken for
// anything else.
func detectBOM(b []byte) (textEncoding, bool) {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return textEncoding{name: EncodingUTF8BOM, enc: unicode.UTF8BOM}, true
	case bytes.HasPrefix(b, bomUTF16LE):
		return textEncoding{name: EncodingUTF16, enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, true
	case bytes.HasPrefix(b, bomUTF16BE):
		return textEncoding{name: EncodingUTF16BE, enc: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)}, true
	default:
		return textEncoding{}, false
	}
}

// decode converts raw file content to text. A byte-order marker overrides
// the fallback encoding and is stripped.
func decode(raw []byte, fallback textEncoding) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback.enc.NewDecoder()), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encode converts text to the bytes written to disk.
func encode(s string, te textEncoding) ([]byte, error) {
	return te.enc.NewEncoder().Bytes([]byte(s))
}

// firstLine returns the text before the first line break.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
