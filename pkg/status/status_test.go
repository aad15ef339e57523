// Copyright 2025 walteh LLC
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

package status

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFileStatusString(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusSpliced, "spliced"},
		{StatusPending, "pending"},
		{StatusUnchanged, "unchanged"},
		{StatusFailed, "failed"},
		{StatusUnknown, "unknown"},
		{FileStatus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	m := New(dir)

	path := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o750))

	err := m.WriteFileAtomic(ctx, "script.sh", []byte("new\n"))
	require.NoError(t, err, "atomic write should succeed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o750), info.Mode().Perm(), "file mode should be preserved")
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should be left behind")
}

func TestWriteFileAtomicMissingTarget(t *testing.T) {
	dir := t.TempDir()
	m := New(dir)

	err := m.WriteFileAtomic(context.Background(), "missing.txt", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "error should wrap the stat failure")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be created")
}

func TestReadFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	m := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))

	content, err := m.ReadFile(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	content, err = m.ReadFile(ctx, filepath.Join(dir, "a.txt"))
	require.NoError(t, err, "absolute paths should bypass the base dir")
	assert.Equal(t, "hello", string(content))

	_, err = m.ReadFile(ctx, "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}

func TestFileExists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	m := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))

	exists, err := m.FileExists(ctx, "a.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = m.FileExists(ctx, "b.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTracking(t *testing.T) {
	ctx := context.Background()
	m := New(t.TempDir())

	m.TrackFile(ctx, "b.txt", FileInfo{Status: StatusFailed, Error: errors.New("boom")})
	m.TrackFile(ctx, "a.txt", FileInfo{Status: StatusSpliced, Checksum: Checksum([]byte("x"))})

	info, err := m.GetFileInfo(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", info.Path)
	assert.Equal(t, StatusSpliced, info.Status)

	_, err = m.GetFileInfo(ctx, "c.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not tracked")

	files, err := m.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Path, "files should be sorted by path")
	assert.Equal(t, "b.txt", files[1].Path)
	assert.EqualError(t, files[1].Error, "boom")
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
