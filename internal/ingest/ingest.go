// Package ingest reads notification text files into (app_name, title,
// content) triples. The format is line-oriented: "app_name:", "title:"
// and "content:" prefixes, where "content: |" opens a block literal
// whose indented lines are stripped. Unprefixed leading text counts as
// content. Batch files separate examples with blank lines.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Notification is one (app_name, title, content) triple.
type Notification struct {
	AppName string
	Title   string
	Content string
}

// maxLine bounds a single input line; notification texts are short.
const maxLine = 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}

// Read parses a single notification block. Blank lines inside the
// content section are preserved as empty content lines.
func Read(r io.Reader) (Notification, error) {
	var n Notification
	var contentLines []string
	inContent := false

	sc := newScanner(r)
	for sc.Scan() {
		stripped := strings.TrimSpace(sc.Text())
		if stripped == "" {
			if inContent {
				contentLines = append(contentLines, "")
			}
			continue
		}
		switch {
		case strings.HasPrefix(stripped, "app_name:"):
			n.AppName = strings.TrimSpace(strings.TrimPrefix(stripped, "app_name:"))
			inContent = false
		case strings.HasPrefix(stripped, "title:"):
			n.Title = strings.TrimSpace(strings.TrimPrefix(stripped, "title:"))
			inContent = false
		case strings.HasPrefix(stripped, "content:"):
			part := strings.TrimSpace(strings.TrimPrefix(stripped, "content:"))
			if part != "|" {
				contentLines = append(contentLines, part)
			}
			inContent = true
		default:
			contentLines = append(contentLines, stripped)
			inContent = true
		}
	}
	if err := sc.Err(); err != nil {
		return Notification{}, fmt.Errorf("reading notification: %w", err)
	}
	n.Content = strings.Join(contentLines, "\n")
	return n, nil
}

// ReadBatch parses a file holding multiple notification blocks separated
// by blank lines. A new "app_name:" line also starts a new block.
func ReadBatch(r io.Reader) ([]Notification, error) {
	var out []Notification
	var cur *Notification
	var contentLines []string
	inContent := false

	flush := func() {
		if cur == nil {
			return
		}
		if len(contentLines) > 0 {
			cur.Content = strings.Join(contentLines, "\n")
		}
		out = append(out, *cur)
		cur = nil
		contentLines = nil
		inContent = false
	}

	sc := newScanner(r)
	for sc.Scan() {
		stripped := strings.TrimSpace(sc.Text())
		if stripped == "" {
			flush()
			continue
		}
		switch {
		case strings.HasPrefix(stripped, "app_name:"):
			flush()
			cur = &Notification{AppName: strings.TrimSpace(strings.TrimPrefix(stripped, "app_name:"))}
			inContent = false
		case strings.HasPrefix(stripped, "title:"):
			if cur == nil {
				cur = &Notification{}
			}
			cur.Title = strings.TrimSpace(strings.TrimPrefix(stripped, "title:"))
			inContent = false
		case strings.HasPrefix(stripped, "content:"):
			if cur == nil {
				cur = &Notification{}
			}
			part := strings.TrimSpace(strings.TrimPrefix(stripped, "content:"))
			if part != "|" {
				contentLines = append(contentLines, part)
			}
			inContent = true
		case inContent:
			contentLines = append(contentLines, stripped)
		case cur != nil:
			contentLines = append(contentLines, stripped)
			inContent = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading batch: %w", err)
	}
	flush()
	return out, nil
}

// ReadFile parses a single notification file from disk.
func ReadFile(path string) (Notification, error) {
	f, err := os.Open(path)
	if err != nil {
		return Notification{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// FileInfo describes a notification text file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the .txt files directly under dir.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading notification dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
