// Package config resolves which cellar an invocation works against and
// derives the file paths that belong to it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultCellarName is used when nothing overrides the cellar name.
const DefaultCellarName = "cellar"

// EnvCellar overrides the cellar name when set (flag still wins).
const EnvCellar = "WINEBUDDY_CELLAR"

// Cellar names the storage and CSV export files for one cellar. A value is
// resolved per invocation and passed explicitly into storage; there is no
// process-wide active cellar.
type Cellar struct {
	Name    string
	DBPath  string
	CSVPath string
}

// FromName derives both file paths from one base name. An empty dir keeps
// the paths relative to the working directory.
func FromName(dir, name string) Cellar {
	return Cellar{
		Name:    name,
		DBPath:  filepath.Join(dir, name+".db"),
		CSVPath: filepath.Join(dir, name+".csv"),
	}
}

// ResolveCellar picks the active cellar for this invocation. Precedence:
// the --cellar-name flag, then WINEBUDDY_CELLAR (a .env file in the working
// directory is loaded first), then the global config file, then the
// built-in default.
func ResolveCellar(flagName string) (Cellar, error) {
	_ = godotenv.Load()

	global, err := LoadGlobal()
	if err != nil {
		return Cellar{}, fmt.Errorf("loading global config: %w", err)
	}

	name := flagName
	if name == "" {
		name = os.Getenv(EnvCellar)
	}
	if name == "" {
		name = global.DefaultCellar
	}
	if name == "" {
		name = DefaultCellarName
	}

	return FromName(global.DataDir, name), nil
}
