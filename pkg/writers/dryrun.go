// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates Writers recording to the
	// same backend but for different roots
	GetWriter(root string, ext string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	out   io.Writer
	files []*file
	t1    time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root  string
	ext   string
	files *[]*file
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// recording to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		out:   w,
		files: []*file{},
		t1:    time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string, ext string) Writer {
	return &writer{
		root:  root,
		ext:   ext,
		files: &d.files,
	}
}

func (w *writer) Write(name, p string, content []byte) error {
	if len(content) == 0 {
		return nil
	}
	if len(w.ext) > 0 {
		name = fmt.Sprintf("%s.%s", name, w.ext)
	}
	*w.files = append(*w.files, &file{
		path: path.Join(w.root, p, name),
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	var b bytes.Buffer
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.out.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	seen := map[string]bool{}
	for _, f := range files {
		segments := strings.Split(f.path, "/")
		for i, s := range segments {
			p := strings.Join(segments[:i+1], "/")
			if seen[p] {
				continue
			}
			seen[p] = true
			b.Write(bytes.Repeat([]byte("  "), i))
			if i == len(segments)-1 && f.size > 0 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
