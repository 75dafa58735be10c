package report

import (
	"io"
	"os"
)

// Write stores content at path and echoes it to w from the same byte
// slice, so the file and console copies are byte-identical.
func Write(path, content string, w io.Writer) error {
	data := []byte(content)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
