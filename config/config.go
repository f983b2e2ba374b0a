// Package config provides the runtime configuration of the till.
//
// Values come from the environment, optionally seeded from a .env file, and
// can be overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDataDir       = "TILL_DATA_DIR"
	EnvStorage       = "TILL_STORAGE"
	EnvCurrency      = "TILL_CURRENCY"
	EnvLoginAttempts = "TILL_LOGIN_ATTEMPTS"
	EnvPlain         = "TILL_PLAIN"
	EnvAbandon       = "TILL_ABANDON"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Abandon policies.
const (
	AbandonKeep    = "keep"
	AbandonRestore = "restore"
)

// Config holds the settings shared by every command.
type Config struct {
	DataDir       string
	Storage       string
	Currency      string
	LoginAttempts int
	Plain         bool
	Abandon       string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DataDir:       ".till",
		Storage:       StorageFile,
		Currency:      "USD",
		LoginAttempts: 3,
		Abandon:       AbandonKeep,
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load reads the .env files, if any, then the environment.
//
// Variables already set in the environment win over the .env files.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else {
		for _, f := range envFiles {
			_ = godotenv.Load(f)
		}
	}
	def := Default()
	return Config{
		DataDir:       getenv(EnvDataDir, def.DataDir),
		Storage:       strings.ToLower(getenv(EnvStorage, def.Storage)),
		Currency:      strings.ToUpper(getenv(EnvCurrency, def.Currency)),
		LoginAttempts: atoienv(EnvLoginAttempts, def.LoginAttempts),
		Plain:         boolenv(EnvPlain, def.Plain),
		Abandon:       strings.ToLower(getenv(EnvAbandon, def.Abandon)),
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data directory is empty"))
	}
	if c.Storage != StorageFile && c.Storage != StorageSQLite {
		errs = append(errs, fmt.Errorf("unknown storage %q, want %q or %q", c.Storage, StorageFile, StorageSQLite))
	}
	if money.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	if c.LoginAttempts < 1 {
		errs = append(errs, fmt.Errorf("login attempts %d must be at least 1", c.LoginAttempts))
	}
	if c.Abandon != AbandonKeep && c.Abandon != AbandonRestore {
		errs = append(errs, fmt.Errorf("unknown abandon policy %q, want %q or %q", c.Abandon, AbandonKeep, AbandonRestore))
	}
	return errors.Join(errs...)
}

// Path returns the path of a file in the data directory.
func (c Config) Path(name string) string { return filepath.Join(c.DataDir, name) }

// Env returns the settings as environment variables, for extensions.
func (c Config) Env() []string {
	return []string{
		EnvDataDir + "=" + c.DataDir,
		EnvStorage + "=" + c.Storage,
		EnvCurrency + "=" + c.Currency,
		EnvLoginAttempts + "=" + strconv.Itoa(c.LoginAttempts),
		EnvPlain + "=" + strconv.FormatBool(c.Plain),
		EnvAbandon + "=" + c.Abandon,
	}
}
