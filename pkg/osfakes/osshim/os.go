// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package osshim

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"os"
)

// Os is shim for the os package functions used when reading
// site descriptors, theme configuration and linked documents
//
//counterfeiter:generate . Os
type Os interface {
	ReadFile(name string) ([]byte, error)
	IsNotExist(err error) bool
	IsDir(path string) (bool, error)
	LookupEnv(key string) (string, bool)
	UserHomeDir() (string, error)
}

// OsShim is default Os implementation
type OsShim struct{}

// ReadFile see os.ReadFile
func (sh *OsShim) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// IsNotExist see os.IsNotExist
func (sh *OsShim) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

// IsDir checks if a given path is a dir. Symlinks are followed,
// a site descriptor is often linked into the build directory.
func (sh *OsShim) IsDir(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return stat.IsDir(), nil
}

// LookupEnv see os.LookupEnv
func (sh *OsShim) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// UserHomeDir see os.UserHomeDir
func (sh *OsShim) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
