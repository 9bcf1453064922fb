// Package integration provides CLI integration tests for lore.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// loreBin is the path to the built lore binary.
	loreBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetLoreBin sets the path to the lore binary (called from TestMain).
func SetLoreBin(path string) {
	loreBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment. The config.yaml
// it writes includes a small user directory so author names resolve.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build lore: %v", buildErr)
	}
	if loreBin == "" {
		t.Fatal("lore binary not built (loreBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\nusers:\n  1: ada\n  2: grace\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a lore command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunLore executes the lore CLI with the given arguments.
func (e *TestEnv) RunLore(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(loreBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run lore: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunLore executes the lore CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunLore(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunLore(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("lore %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Question represents a question entity for JSON parsing.
type Question struct {
	QuestionID        int64    `json:"question_id"`
	Title             string   `json:"title"`
	Body              string   `json:"body"`
	AuthorID          int64    `json:"author_id"`
	PreferredAnswerID *int64   `json:"preferred_answer_id"`
	TokenSet          []string `json:"token_set"`
	LinkedAnswerIDs   []int64  `json:"linked_answer_ids"`
}

// Answer represents an answer entity for JSON parsing.
type Answer struct {
	AnswerID        int64   `json:"answer_id"`
	Text            string  `json:"text"`
	AuthorID        int64   `json:"author_id"`
	LinkedAnswerIDs []int64 `json:"linked_answer_ids"`
}

// Review represents a review entity for JSON parsing.
type Review struct {
	ReviewID    int64  `json:"review_id"`
	ForQuestion bool   `json:"for_question"`
	RelatedID   int64  `json:"related_id"`
	Text        string `json:"text"`
	AuthorID    int64  `json:"author_id"`
	VoteTotal   int    `json:"vote_total"`
}
