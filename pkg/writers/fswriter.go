// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
	Ext  string
}

func (f *FSWriter) Write(name, path string, content []byte) error {
	if len(content) == 0 {
		return nil
	}
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	if len(f.Ext) > 0 {
		name = fmt.Sprintf("%s.%s", name, f.Ext)
	}
	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}
	klog.V(1).Infof("written %s (%d bytes)", filePath, len(content))
	return nil
}
