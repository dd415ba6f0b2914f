package codegen

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is a file ready to be written.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// WriteFiles writes files into outputDir, creating it if needed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)
		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Filename, err)
		}
	}
	return nil
}
