package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override the global config.
const (
	EnvDataFile  = "EXPENSE_FILE"
	EnvIndexFile = "EXPENSE_INDEX"
)

const (
	// DefaultDataFile is the data file name, relative to the working directory.
	DefaultDataFile = "expenses.json"
	// IndexFileName is the default index file name, placed next to the data file.
	IndexFileName = ".expenses.db"
)

// Paths holds the resolved file locations for one invocation.
type Paths struct {
	DataFile  string `json:"data_file"`
	IndexFile string `json:"index_file"`
}

// LoadEnv loads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// Resolve determines the data and index file paths.
// The data file comes from, in order: flagFile, $EXPENSE_FILE, the global
// config's data_file, then expenses.json in the working directory.
// The index comes from $EXPENSE_INDEX, then index_file, then .expenses.db
// beside the data file.
func Resolve(flagFile string) (Paths, error) {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return Paths{}, err
	}

	data := firstNonEmpty(flagFile, os.Getenv(EnvDataFile), cfg.DataFile, DefaultDataFile)
	data = ExpandPath(data)

	index := firstNonEmpty(os.Getenv(EnvIndexFile), cfg.IndexFile)
	if index == "" {
		index = filepath.Join(filepath.Dir(data), IndexFileName)
	}
	index = ExpandPath(index)

	return Paths{DataFile: data, IndexFile: index}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
