package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values
const (
	EnvAffix   = "VENN_AFFIX"
	EnvTitle   = "VENN_TITLE"
	EnvOutput  = "VENN_OUT"
	EnvReports = "VENN_REPORT"
	EnvArchive = "VENN_ARCHIVE"
	EnvDisplay = "VENN_DISPLAY"
	EnvLevel   = "VENN_LOG_LEVEL"
)

// LookupFunc reports the value of an environment variable
type LookupFunc func(key string) (string, bool)

// EnvLookup merges a dotenv file with the process environment.
// Process variables win. A missing dotenv file is not an error.
func EnvLookup(dotenvPath string) (LookupFunc, error) {
	dotEnv, err := godotenv.Read(dotenvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		dotEnv = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotEnv[key]
		return v, ok && v != ""
	}, nil
}

// ApplyEnv overrides config values with the environment
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvAffix); ok {
		c.Affix = v
	}
	if v, ok := lookup(EnvTitle); ok {
		c.Title = v
	}
	if v, ok := lookup(EnvOutput); ok {
		c.Output.Dir = v
	}
	if v, ok := lookup(EnvReports); ok {
		c.Output.Reports = splitList(v)
	}
	if v, ok := lookup(EnvArchive); ok {
		c.Archive.Path = v
	}
	if v, ok := lookup(EnvDisplay); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvDisplay, v)
		}
		c.Display = b
	}
	if v, ok := lookup(EnvLevel); ok {
		c.Log.Level = v
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
