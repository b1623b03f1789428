package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/untillpro/goutils/logger"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/convert"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNoDestination is returned for a class outside every configured namespace.
var ErrNoDestination = errors.New("no destination for class")

// File is a rendered metadata file.
type File struct {
	// Path is where the file is written, e.g. "build/Order.yml".
	Path string
	// Classes are the names of the classes the file holds.
	Classes []string
	Content []byte
}

// Files renders one file per class. destinations maps class namespaces to
// directories; the longest namespace prefix of a class decides its directory.
func Files(classes []*convert.Class, destinations map[string]string) ([]File, error) {
	files := make([]File, 0, len(classes))

	for _, cls := range classes {
		path, err := Path(cls.Name, destinations)
		if err != nil {
			return nil, err
		}

		content, err := Marshal([]*convert.Class{cls})
		if err != nil {
			return nil, err
		}

		files = append(files, File{Path: path, Classes: []string{cls.Name}, Content: content})
	}

	return files, nil
}

// SingleFile renders every class into one file at path.
func SingleFile(classes []*convert.Class, path string) (File, error) {
	content, err := Marshal(classes)
	if err != nil {
		return File{}, err
	}

	names := make([]string, 0, len(classes))
	for _, cls := range classes {
		names = append(names, cls.Name)
	}

	return File{Path: path, Classes: names, Content: content}, nil
}

// Path returns the metadata file path of the class fqcn.
func Path(fqcn string, destinations map[string]string) (string, error) {
	var (
		best    string
		bestDir string
		found   bool
	)

	for ns, dir := range destinations {
		prefix := strings.Trim(ns, common.ClassSeparator)
		if !inNamespace(fqcn, prefix) {
			continue
		}

		if !found || len(prefix) > len(best) || (len(prefix) == len(best) && prefix < best) {
			best, bestDir, found = prefix, dir, true
		}
	}

	if !found {
		return "", fmt.Errorf("%w %s", ErrNoDestination, fqcn)
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(fqcn, best), common.ClassSeparator)

	return filepath.Join(bestDir, strings.ReplaceAll(rel, common.ClassSeparator, ".")+".yml"), nil
}

func inNamespace(fqcn, ns string) bool {
	if ns == "" {
		return true
	}

	return strings.HasPrefix(fqcn, ns+common.ClassSeparator)
}

// WriteFiles writes files, creating their directories as needed.
func WriteFiles(files []File) error {
	for _, file := range files {
		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", file.Path, err)
		}

		if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}

		logger.Verbose("wrote", file.Path)
	}

	return nil
}
