// SPDX-License-Identifier: MIT
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

func writeTempMatrix(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadMatrixFile(t *testing.T) {
	t.Parallel()

	path := writeTempMatrix(t, "# comment\n1 2 4\n4 5 6\n\n7 8 12\n")
	m, err := readMatrixFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)
}

func TestReadMatrixFileRagged(t *testing.T) {
	t.Parallel()

	path := writeTempMatrix(t, "1 2\n3\n")
	_, err := readMatrixFile(path)
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestReadMatrixFileBadValue(t *testing.T) {
	t.Parallel()

	path := writeTempMatrix(t, "1 x\n")
	_, err := readMatrixFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad value")
}

func TestReadMatrixFileMissing(t *testing.T) {
	t.Parallel()

	_, err := readMatrixFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}
