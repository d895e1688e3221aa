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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/fileversion/pkg/defaults"
	fverrors "github.com/NVIDIA/fileversion/pkg/errors"
	"github.com/NVIDIA/fileversion/pkg/version"
)

// ownerWrite is the permission bit whose absence marks a file read-only.
// On Windows os.Chmod maps it to the read-only attribute.
const ownerWrite os.FileMode = 0o200

// bomProbeLen is the length of the longest byte-order mark recognized.
const bomProbeLen = 3

// Option configures a File.
type Option func(*File)

// WithEncoding sets the encoding used to write the file and to read it when
// no byte-order marker is present. Default is ASCII, and a file that already
// carries a byte-order marker keeps its encoding.
func WithEncoding(name string) Option {
	return func(f *File) {
		f.encodingName = name
		f.encodingSet = true
	}
}

// WithMaxSize sets the maximum size (in bytes) of a version file that will
// be read. Default is 1MB.
func WithMaxSize(size int64) Option {
	return func(f *File) {
		f.maxSize = size
	}
}

// File is a version number persisted as the first line of a text file.
// A File holds no state between operations; every call re-reads the file.
type File struct {
	path         string
	encodingName string
	encodingSet  bool
	encoding     textEncoding
	maxSize      int64
}

// Request is the string-typed surface used by host adapters.
// Action defaults to Increment, Part to Build and Increment to 1 when unset.
// A non-nil Increment is used as given, so a pointer to 0 is a no-op.
type Request struct {
	Action    string
	Increment *int
	Part      string
	Value     string
}

// fileState is the on-disk state observed during one operation.
type fileState struct {
	target           string // f.path with symlinks resolved
	origMode         os.FileMode
	mode             os.FileMode
	created          bool
	changedAttribute bool
	detected         *textEncoding
}

// New creates a File for the given path.
// Returns an error if the path is empty or the encoding is unknown.
func New(path string, opts ...Option) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fverrors.New(fverrors.ErrCodeInvalidRequest, "version file path cannot be empty")
	}

	f := &File{
		path:    path,
		maxSize: defaults.MaxFileSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	te, err := resolveEncoding(f.encodingName)
	if err != nil {
		return nil, err
	}
	f.encoding = te
	return f, nil
}

// Path returns the path of the version file.
func (f *File) Path() string {
	return f.path
}

// Execute validates a string-typed request and dispatches it.
// An unknown action fails with INVALID_ACTION before the file is touched.
func (f *File) Execute(ctx context.Context, req Request) (*Result, error) {
	action := Action(defaults.Action)
	if strings.TrimSpace(req.Action) != "" {
		a, err := ParseAction(req.Action)
		if err != nil {
			observe("unknown", time.Now(), err)
			return nil, err
		}
		action = a
	}

	switch action {
	case ActionIncrement:
		part := version.Component(defaults.Component)
		if strings.TrimSpace(req.Part) != "" {
			p, err := version.ParseComponent(req.Part)
			if err != nil {
				return nil, fverrors.Wrap(fverrors.ErrCodeFormat, "invalid version component", err)
			}
			part = p
		}
		amount := defaults.Increment
		if req.Increment != nil {
			amount = *req.Increment
		}
		return f.Increment(ctx, amount, part)
	case ActionReset:
		v, err := version.Parse(req.Value)
		if err != nil {
			return nil, fverrors.WrapWithContext(fverrors.ErrCodeFormat, "invalid reset value", err,
				map[string]any{"value": req.Value})
		}
		return f.Reset(ctx, v)
	default:
		return nil, fverrors.New(fverrors.ErrCodeInvalidAction, fmt.Sprintf("invalid action %q", action))
	}
}

// Increment adds amount to the selected component of the stored version and
// writes the result if it differs from the value read. An absent or empty
// file starts from the default version 0.0.1.0.
func (f *File) Increment(ctx context.Context, amount int, part version.Component) (*Result, error) {
	if !part.IsValid() {
		return nil, fverrors.Wrap(fverrors.ErrCodeFormat, "invalid version component",
			fmt.Errorf("%w: %q", version.ErrUnknownComponent, string(part)))
	}

	return f.mutate(ctx, ActionIncrement, func(st *fileState) (*Result, error) {
		current, err := f.read(st)
		if err != nil {
			return nil, err
		}

		next, err := version.Increment(current, amount, part)
		if err != nil {
			return nil, f.incrementError(err, current, amount, part)
		}

		res := newResult(f.path, next)
		res.Previous = current.String()
		if next.Equals(current) {
			slog.Debug("version unchanged, skipping write", "path", f.path, "version", next.String())
			return res, nil
		}

		if err := f.write(st, next); err != nil {
			return nil, err
		}
		res.Written = true
		return res, nil
	})
}

// Reset writes v to the file unconditionally.
func (f *File) Reset(ctx context.Context, v version.Version) (*Result, error) {
	if !v.IsValid() {
		return nil, fverrors.NewWithContext(fverrors.ErrCodeFormat, "invalid reset value",
			map[string]any{"value": v.String()})
	}

	return f.mutate(ctx, ActionReset, func(st *fileState) (*Result, error) {
		if !f.encodingSet {
			// keep the encoding announced by an existing byte-order marker
			head, err := f.readHead(st.target)
			if err != nil {
				return nil, err
			}
			if te, ok := detectBOM(head); ok {
				st.detected = &te
			}
		}

		if err := f.write(st, v); err != nil {
			return nil, err
		}
		res := newResult(f.path, v)
		res.Written = true
		return res, nil
	})
}

// Get reads the stored version without modifying the file or its
// attributes. An absent or empty file reports the default version.
func (f *File) Get(ctx context.Context) (res *Result, err error) {
	start := time.Now()
	defer func() { observe(operationGet, start, err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("version file not found, using default", "path", f.path)
		res = newResult(f.path, version.MustParse(defaults.Version))
		res.Encoding = f.encoding.name
		return res, nil
	}
	if err != nil {
		return nil, f.ioError("failed to stat version file", err)
	}
	if info.IsDir() {
		return nil, f.ioError("failed to read version file", fmt.Errorf("%q is a directory", f.path))
	}

	st := &fileState{target: f.path, origMode: info.Mode().Perm(), mode: info.Mode().Perm()}
	v, err := f.read(st)
	if err != nil {
		return nil, err
	}

	res = newResult(f.path, v)
	res.ReadOnly = st.origMode&ownerWrite == 0
	res.Encoding = f.writeEncoding(st).name
	return res, nil
}

// mutate runs the locate, unlock, apply, relock sequence shared by the
// mutating actions. Relock runs whenever unlock changed the attribute.
func (f *File) mutate(ctx context.Context, action Action, apply func(*fileState) (*Result, error)) (res *Result, err error) {
	start := time.Now()
	defer func() { observe(strings.ToLower(action.String()), start, err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	st, err := f.locate()
	if err != nil {
		return nil, err
	}

	if err = f.unlock(st); err != nil {
		return nil, err
	}
	defer func() {
		rerr := f.relock(st)
		if rerr == nil {
			return
		}
		if err != nil {
			// the primary failure is what the caller needs to see
			slog.Warn("failed to restore read-only attribute",
				"path", f.path,
				"error", rerr,
				"cause", err)
			return
		}
		res, err = nil, rerr
	}()

	res, err = apply(st)
	if err != nil {
		return nil, err
	}

	res.Action = action
	res.Created = st.created
	res.ReadOnly = st.changedAttribute
	res.Encoding = f.writeEncoding(st).name
	return res, nil
}

// locate makes sure the file exists, creating it empty if needed, and
// resolves symlinks so the attribute toggle and the rename act on the
// link target rather than replacing the link.
func (f *File) locate() (*fileState, error) {
	st := &fileState{}

	info, err := os.Stat(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("creating version file", "path", f.path)
		fh, cerr := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defaults.FileMode)
		if cerr != nil {
			return nil, f.ioError("failed to create version file", cerr)
		}
		if cerr = fh.Close(); cerr != nil {
			return nil, f.ioError("failed to create version file", cerr)
		}
		st.created = true
		info, err = os.Stat(f.path)
	}
	if err != nil {
		return nil, f.ioError("failed to stat version file", err)
	}
	if info.IsDir() {
		return nil, f.ioError("failed to open version file", fmt.Errorf("%q is a directory", f.path))
	}

	target, err := filepath.EvalSymlinks(f.path)
	if err != nil {
		return nil, f.ioError("failed to resolve version file path", err)
	}
	if target != filepath.Clean(f.path) {
		slog.Debug("version file is a symlink", "path", f.path, "target", target)
	}
	st.target = target

	st.origMode = info.Mode().Perm()
	st.mode = st.origMode
	return st, nil
}

func (f *File) unlock(st *fileState) error {
	if st.origMode&ownerWrite != 0 {
		return nil
	}

	slog.Debug("making file writable", "path", st.target, "mode", st.origMode.String())
	writable := st.origMode | ownerWrite
	if err := os.Chmod(st.target, writable); err != nil {
		return f.ioError("failed to clear read-only attribute", err)
	}
	st.mode = writable
	st.changedAttribute = true
	attributeTogglesTotal.Inc()
	return nil
}

func (f *File) relock(st *fileState) error {
	if !st.changedAttribute {
		return nil
	}

	slog.Debug("making file read-only", "path", st.target, "mode", st.origMode.String())
	if err := os.Chmod(st.target, st.origMode); err != nil {
		return f.ioError("failed to restore read-only attribute", err)
	}
	return nil
}

// read parses the first line of the file. Empty content yields the default
// version; malformed content is an error.
func (f *File) read(st *fileState) (version.Version, error) {
	raw, err := f.readRaw(st.target)
	if err != nil {
		return version.Version{}, err
	}
	if te, ok := detectBOM(raw); ok {
		st.detected = &te
	}

	text, err := decode(raw, f.encoding)
	if err != nil {
		return version.Version{}, fverrors.WrapWithContext(fverrors.ErrCodeFormat,
			"failed to decode version file", err, map[string]any{"path": f.path})
	}
	if text == "" {
		slog.Debug("empty version file, using default", "path", f.path, "version", defaults.Version)
		return version.MustParse(defaults.Version), nil
	}

	line := firstLine(text)
	v, err := version.Parse(line)
	if err != nil {
		return version.Version{}, fverrors.WrapWithContext(fverrors.ErrCodeFormat,
			"failed to parse version file", err,
			map[string]any{"path": f.path, "line": line})
	}

	slog.Debug("read version", "version", v.String(), "path", f.path)
	return v, nil
}

// readRaw returns the file content. The handle is released before return.
func (f *File) readRaw(path string) ([]byte, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, f.ioError("failed to open version file", err)
	}
	defer fh.Close()

	raw, err := io.ReadAll(io.LimitReader(fh, f.maxSize+1))
	if err != nil {
		return nil, f.ioError("failed to read version file", err)
	}
	if int64(len(raw)) > f.maxSize {
		return nil, f.ioError("failed to read version file",
			fmt.Errorf("file exceeds maximum size of %d bytes", f.maxSize))
	}
	return raw, nil
}

// readHead returns at most the first bomProbeLen bytes of the file, enough
// to recognize a byte-order mark without reading the content.
func (f *File) readHead(path string) ([]byte, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, f.ioError("failed to open version file", err)
	}
	defer fh.Close()

	buf := make([]byte, bomProbeLen)
	n, err := io.ReadFull(fh, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, f.ioError("failed to read version file", err)
	}
	return buf[:n], nil
}

// write replaces the file content with v. The text goes to a temporary file
// in the same directory which is then renamed over the target, so readers
// never observe a partial write.
func (f *File) write(st *fileState, v version.Version) error {
	te := f.writeEncoding(st)
	data, err := encode(v.String(), te)
	if err != nil {
		return f.ioError("failed to encode version", err)
	}

	slog.Debug("writing version", "version", v.String(), "path", st.target, "encoding", te.name)

	tmpName, err := writeTemp(filepath.Dir(st.target), filepath.Base(st.target), data, st.mode)
	if err != nil {
		return f.ioError("failed to write version file", err)
	}
	if err := os.Rename(tmpName, st.target); err != nil {
		_ = os.Remove(tmpName)
		return f.ioError("failed to replace version file", err)
	}

	writesTotal.Inc()
	return nil
}

func writeTemp(dir, base string, data []byte, mode os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return "", err
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, mode)
	}
	if err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}

// writeEncoding picks the encoding for a write: the caller's choice, then
// the one detected from a byte-order marker, then the default.
func (f *File) writeEncoding(st *fileState) textEncoding {
	if !f.encodingSet && st.detected != nil {
		return *st.detected
	}
	return f.encoding
}

func (f *File) incrementError(err error, current version.Version, amount int, part version.Component) error {
	code := fverrors.ErrCodeFormat
	if errors.Is(err, version.ErrComponentOverflow) || errors.Is(err, version.ErrNegativeComponent) {
		code = fverrors.ErrCodeOverflow
	}
	return fverrors.WrapWithContext(code, "failed to increment version", err, map[string]any{
		"path":      f.path,
		"version":   current.String(),
		"increment": amount,
		"part":      part.String(),
	})
}

func (f *File) ioError(msg string, err error) error {
	return fverrors.WrapWithContext(fverrors.ErrCodeIO, msg, err, map[string]any{"path": f.path})
}
