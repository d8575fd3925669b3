// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

//counterfeiter:generate . Writer

// Writer writes blobs with name to a given path
type Writer interface {
	Write(name, path string, content []byte) error
}
