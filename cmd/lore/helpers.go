// Shared helpers for lore CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/lore/internal/directory"
	"github.com/mesh-intelligence/lore/internal/qa"
	"github.com/mesh-intelligence/lore/internal/sqlite"
	"github.com/mesh-intelligence/lore/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for
// error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// openService attaches a backend and wraps it in the Q&A service with the
// configured user directory and log level. The caller must defer
// backend.Detach().
func openService() (*qa.Service, *sqlite.Backend, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(configLogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)

	dir := directory.NewStatic(configUsers)
	return qa.New(backend, dir, log), backend, nil
}

// parseID parses a positional argument as an entity ID. A non-numeric or
// non-positive value is a user error.
func parseID(arg, label string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "invalid %s %q (expected positive integer)\n", label, arg)
		os.Exit(exitUserError)
	}
	return id
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// isEntityNotFound returns true if the error wraps ErrNotFound.
func isEntityNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// fatalUser prints a user-facing error and exits with the user error code.
func fatalUser(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitUserError)
}

// fatalSys prints a prefixed system error and exits with the system error code.
func fatalSys(prefix string, err error) {
	fmt.Fprintln(os.Stderr, prefix+":", err)
	os.Exit(exitSysError)
}
