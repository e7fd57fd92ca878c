// Package gitstore persists analysis results as timestamped files and, when
// the target directory lives inside a git work tree, commits them. When git
// is unavailable or refuses, the store falls back to appending a note to a
// .commit.txt ledger instead of failing the run.
package gitstore

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/specialistvlad/depvis/internal/ctxlog"
)

const noteFile = ".commit.txt"

// Store writes result files into a single target directory. Safe for
// concurrent use: git operations are serialized because they contend on
// the repository's index lock.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a store rooted at dir. Empty means the current directory.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Dir returns the store's target directory.
func (s *Store) Dir() string {
	return s.dir
}

// Timestamp returns the UTC instant in the compact form used in result
// file names, e.g. 20260828T143000Z.
func Timestamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// Save writes content under filename and tries to commit it with message.
// The returned string describes where the result ended up and whether it
// was committed; persistence problems beyond the initial write are reported
// in that message, not as errors.
func (s *Store) Save(ctx context.Context, filename, message string, content []byte) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write result: %w", err)
	}
	logger.Debug("Result file written.", "path", path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := exec.LookPath("git"); err != nil {
		s.note(ctx, fmt.Sprintf("created %s (git not found)", filename))
		return fmt.Sprintf("Saved to %s (git not available; wrote %s)", path, noteFile), nil
	}

	if !s.insideWorkTree(ctx) {
		s.note(ctx, fmt.Sprintf("created %s", filename))
		return fmt.Sprintf("Saved to %s (not a git repo; wrote %s)", path, noteFile), nil
	}

	if err := s.commit(ctx, filename, message); err != nil {
		logger.Warn("Commit failed, falling back to note.", "error", err)
		s.note(ctx, fmt.Sprintf("created %s (git error: %v)", filename, err))
		return fmt.Sprintf("Saved to %s (git error; wrote %s)", path, noteFile), nil
	}

	return fmt.Sprintf("Saved and committed as %s", path), nil
}

func (s *Store) insideWorkTree(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = s.dir
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

func (s *Store) commit(ctx context.Context, filename, message string) error {
	add := exec.CommandContext(ctx, "git", "add", filename)
	add.Dir = s.dir
	if out, err := add.CombinedOutput(); err != nil {
		return fmt.Errorf("git add: %w: %s", err, strings.TrimSpace(string(out)))
	}

	commit := exec.CommandContext(ctx, "git", "commit", "-m", message)
	commit.Dir = s.dir
	if out, err := commit.CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// note appends a line to the .commit.txt ledger. Best effort only.
func (s *Store) note(ctx context.Context, text string) {
	line := fmt.Sprintf("%s - %s\n", Timestamp(time.Now()), text)
	f, err := os.OpenFile(filepath.Join(s.dir, noteFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to write commit note.", "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to write commit note.", "error", err)
	}
}
