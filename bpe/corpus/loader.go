package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// ErrMalformedLine is returned when a line lacks the requested column.
var ErrMalformedLine = errors.New("line has too few tab-separated columns")

const maxLineSize = 1 << 20

// ReadColumn returns the given tab-separated column of every non-blank line.
// Column 0 of a line without tabs is the whole line, so plain text files read
// as one column.
func ReadColumn(r io.Reader, column int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if column >= len(cols) {
			return nil, fmt.Errorf("%w: line %d has %d, want column %d", ErrMalformedLine, lineNo, len(cols), column)
		}
		out = append(out, cols[column])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return out, nil
}

// LoadFile reads one corpus file and returns its words.
func LoadFile(path string, column int, p *Producer) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadColumn(f, column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	words, err := p.WordsFromLines(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// LoadFiles reads the files concurrently and returns their words
// concatenated in argument order.
func LoadFiles(ctx context.Context, paths []string, column int, p *Producer) ([]string, error) {
	results := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			words, err := LoadFile(path, column, p)
			if err != nil {
				return err
			}
			results[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var words []string
	for _, w := range results {
		words = append(words, w...)
	}
	return words, nil
}

// LoadDir loads every regular file under dir in lexical path order, skipping
// paths matched by the gitignore-style file ignoreName at the root of dir
// (when present) and the ignore file itself.
func LoadDir(ctx context.Context, dir, ignoreName string, column int, p *Producer) ([]string, error) {
	var matcher *ignore.GitIgnore
	if ignoreName != "" {
		ignorePath := filepath.Join(dir, ignoreName)
		if _, err := os.Stat(ignorePath); err == nil {
			matcher, err = ignore.CompileIgnoreFile(ignorePath)
			if err != nil {
				return nil, fmt.Errorf("error reading %s: %w", ignorePath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error checking for %s: %w", ignorePath, err)
		}
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && rel != ignoreName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus directory %s: %w", dir, err)
	}
	return LoadFiles(ctx, paths, column, p)
}
