package safe

import (
	"io"
	"log/slog"
	"os"

	"github.com/javagrunt/javagrunt/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// RemoveAll removes a workspace directory and logs error if any
func RemoveAll(path string) {
	if path == "" {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		logging.Default().Warn("Fail to remove directory", slog.String("path", path), slog.Any("error", err))
	}
}
