package safe_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/javagrunt/javagrunt/pkg/utils/safe"
	"github.com/m-mizutani/gt"
)

func TestClose(t *testing.T) {
	t.Run("close valid reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("close nil reader", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("close reader that returns error", func(t *testing.T) {
		safe.Close(&errorCloser{})
	})
}

func TestRemoveAll(t *testing.T) {
	t.Run("remove nested workspace", func(t *testing.T) {
		root := t.TempDir()
		dir := filepath.Join(root, "acme", "web", "run-1")
		gt.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("<project/>"), 0644))

		safe.RemoveAll(dir)

		_, err := os.Stat(dir)
		gt.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(root, "acme", "web"))
		gt.NoError(t, err)
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		safe.RemoveAll("")
	})
}

type errorCloser struct{}

func (e *errorCloser) Close() error {
	return io.ErrUnexpectedEOF
}
