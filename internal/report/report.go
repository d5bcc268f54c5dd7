// Package report writes parsed transaction records as formatted JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/txnotify-dev/txnotify/internal/model"
)

// Write encodes rec as 4-space-indented JSON. HTML escaping is off so
// free-form fields keep their source text verbatim; absent fields come
// out as explicit nulls.
func Write(w io.Writer, rec model.TransactionRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return nil
}

// WriteFile writes rec as a JSON file at path.
func WriteFile(path string, rec model.TransactionRecord) error {
	var buf bytes.Buffer
	if err := Write(&buf, rec); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
