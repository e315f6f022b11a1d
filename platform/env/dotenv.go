package env

import (
	"errors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"io/fs"
)

// Load reads the given dotenv files (".env" when none is given) into the process environment.
// Variables already set are not overridden and missing files are ignored.
func Load(log *zap.SugaredLogger, files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			log.Warnw("config", "file", f, "ERROR", err)
		}
	}
}
