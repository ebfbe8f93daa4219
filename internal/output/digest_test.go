package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(a, []byte("G1\nG2\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("G1\nG2\n"), 0644))
	require.NoError(t, os.WriteFile(c, []byte("G2\nG1\n"), 0644))

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	dc, err := Digest(c)
	require.NoError(t, err)

	assert.Len(t, da, 64)
	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)

	_, err = Digest(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
