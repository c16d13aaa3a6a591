// Package linefile stores records as newline separated text files on a
// zfilesystem. Each record occupies exactly one line.
package linefile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

const filePerm = 0o644

// ErrNotFound is returned when a file to be read does not exist.
var ErrNotFound = errors.New("file not found")

// ReadLines returns every line of name with surrounding whitespace
// trimmed. Blank lines are kept as empty strings; only the newline ending the
// final line does not start another one. Lines have no length limit.
func ReadLines(fsys zfilesystem.ReadWriteFileFS, name string) ([]string, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read lines %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read lines %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	return lines, nil
}

// WriteLines replaces the contents of name with lines, one per line.
func WriteLines(fsys zfilesystem.ReadWriteFileFS, name string, lines []string) error {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if err := ensureDir(fsys, name); err != nil {
		return fmt.Errorf("write lines %s: %w", name, err)
	}
	if err := fsys.WriteFile(name, b.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write lines %s: %w", name, err)
	}

	return nil
}

// AppendLine adds line to the end of name, creating the file if needed.
func AppendLine(fsys zfilesystem.ReadWriteFileFS, name, line string) error {
	data, err := fsys.ReadFile(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("append line %s: %w", name, err)
	}

	// a file edited by hand may lack its final newline
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	data = append(data, line...)
	data = append(data, '\n')

	if err := ensureDir(fsys, name); err != nil {
		return fmt.Errorf("append line %s: %w", name, err)
	}
	if err := fsys.WriteFile(name, data, filePerm); err != nil {
		return fmt.Errorf("append line %s: %w", name, err)
	}

	return nil
}

func ensureDir(fsys zfilesystem.ReadWriteFileFS, name string) error {
	dir := path.Dir(name)
	if dir == "." || dir == "/" {
		return nil
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}
