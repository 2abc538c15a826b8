// Package attachment stores article attachments on the local filesystem.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"knowledge-base/internal/logger"
)

const (
	articlesDir = "knowledgebase/articles"
	tempDir     = "knowledgebase/temp/attachments"

	// DefaultKeepTemp is how many upload dirs survive a sweep.
	DefaultKeepTemp = 50
)

// ErrInvalidDir is returned for upload dir names that do not name a dir under the temp root.
var ErrInvalidDir = errors.New("invalid attachment dir")

// FileStore keeps one directory per article and numbered upload dirs for edits in progress.
type FileStore struct {
	root string

	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewFileStore creates the store layout under root.
func NewFileStore(root string) (*FileStore, error) {
	s := &FileStore{root: root, now: time.Now}
	for _, dir := range []string{s.articlesRoot(), s.tempRoot()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *FileStore) articlesRoot() string { return filepath.Join(s.root, articlesDir) }

func (s *FileStore) tempRoot() string { return filepath.Join(s.root, tempDir) }

// ArticleDir returns the attachment directory of an article.
func (s *FileStore) ArticleDir(resourceKey int64) string {
	return filepath.Join(s.articlesRoot(), strconv.FormatInt(resourceKey, 10))
}

// TempDir resolves an upload dir name returned by PrepareTemp.
func (s *FileStore) TempDir(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidDir, name)
	}
	return filepath.Join(s.tempRoot(), name), nil
}

// Copy creates the article directory and copies the files of the upload dir
// fromDir into it. Existing directories and files are logged and kept.
func (s *FileStore) Copy(ctx context.Context, fromDir string, resourceKey int64) error {
	dst := s.ArticleDir(resourceKey)
	if err := os.Mkdir(dst, 0o755); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("create attachment dir for %d: %w", resourceKey, err)
		}
		logger.DebugContext(ctx, "Attachment dir already exists", slog.Int64("resource_key", resourceKey))
	}
	if fromDir == "" {
		return nil
	}

	src, err := s.TempDir(fromDir)
	if err != nil {
		return err
	}
	copied, err := copyFiles(ctx, src, dst)
	if err != nil {
		return fmt.Errorf("copy attachments of %d: %w", resourceKey, err)
	}
	logger.DebugContext(ctx, "Attachments copied",
		slog.Int64("resource_key", resourceKey),
		slog.String("from", fromDir),
		slog.Int("files", copied))
	return nil
}

// Remove deletes the article directory. A missing directory is logged.
func (s *FileStore) Remove(ctx context.Context, resourceKey int64) error {
	dir := s.ArticleDir(resourceKey)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.DebugContext(ctx, "No attachment dir to remove", slog.Int64("resource_key", resourceKey))
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove attachments of %d: %w", resourceKey, err)
	}
	return nil
}

// PrepareTemp creates a new upload dir holding a copy of the article's
// current files and returns its name. A zero resourceKey yields an empty dir.
func (s *FileStore) PrepareTemp(ctx context.Context, resourceKey int64) (string, error) {
	name, dir, err := s.newTempDir()
	if err != nil {
		return "", err
	}
	if resourceKey <= 0 {
		return name, nil
	}

	if _, err := copyFiles(ctx, s.ArticleDir(resourceKey), dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("seed upload dir: %w", err)
	}
	return name, nil
}

// SaveTemp writes one uploaded file into an upload dir, replacing any file of the same name.
func (s *FileStore) SaveTemp(ctx context.Context, dirName, fileName string, r io.Reader) error {
	dir, err := s.TempDir(dirName)
	if err != nil {
		return err
	}
	if fileName == "" || fileName == "." || fileName == ".." || filepath.Base(fileName) != fileName {
		return fmt.Errorf("%w: file %q", ErrInvalidDir, fileName)
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("upload dir %s: %w", dirName, err)
	}

	f, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return fmt.Errorf("create %s: %w", fileName, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", fileName, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.DebugContext(ctx, "Attachment uploaded", slog.String("dir", dirName), slog.String("file", fileName))
	return nil
}

// SweepTemp deletes all but the newest keep upload dirs and returns how many were removed.
func (s *FileStore) SweepTemp(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	entries, err := os.ReadDir(s.tempRoot())
	if err != nil {
		return 0, fmt.Errorf("list upload dirs: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return 0, nil
	}
	sort.Strings(names)

	removed := 0
	for _, name := range names[:len(names)-keep] {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if err := os.RemoveAll(filepath.Join(s.tempRoot(), name)); err != nil {
			logger.WarnContext(ctx, "Failed to remove upload dir", slog.String("dir", name), slog.String("error", err.Error()))
			continue
		}
		removed++
	}
	return removed, nil
}

// newTempDir creates an upload dir named by a zero-padded increasing counter
// so that names sort by age.
func (s *FileStore) newTempDir() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		next := s.now().UnixNano()
		if next <= s.last {
			next = s.last + 1
		}
		s.last = next

		name := fmt.Sprintf("%020d", next)
		dir := filepath.Join(s.tempRoot(), name)
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return name, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", fmt.Errorf("create upload dir: %w", err)
		}
	}
}

// copyFiles copies the regular files of src into dst. Files already present
// in dst are logged and kept.
func copyFiles(ctx context.Context, src, dst string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		err := copyFile(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name()))
		if errors.Is(err, fs.ErrExist) {
			logger.DebugContext(ctx, "Attachment already exists", slog.String("file", e.Name()))
			continue
		}
		if err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
