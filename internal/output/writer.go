// Package output persists the rendered tree and prints the console preview block.
package output

import (
	"fmt"
	"io"
	"os"
)

const (
	previewHeader = "\n--- File Preview ---"
	previewFooter = "--------------------"

	outputFilePermissions = 0o644

	// errorWriteFileFormat is used when the structure file cannot be written.
	errorWriteFileFormat = "writing %s: %w"
)

// WriteTreeFile writes the rendered tree to outputFilePath, overwriting any
// existing file. The content is written byte-for-byte with no trailing newline.
func WriteTreeFile(outputFilePath string, renderedTree string) error {
	writeError := os.WriteFile(outputFilePath, []byte(renderedTree), outputFilePermissions)
	if writeError != nil {
		return fmt.Errorf(errorWriteFileFormat, outputFilePath, writeError)
	}
	return nil
}

// PrintPreview writes the labeled preview block for the rendered tree.
func PrintPreview(writer io.Writer, renderedTree string) {
	fmt.Fprintln(writer, previewHeader)
	fmt.Fprintln(writer, renderedTree)
	fmt.Fprintln(writer, previewFooter)
}
