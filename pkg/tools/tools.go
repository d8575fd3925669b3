// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools
// +build tools

package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)

// Tools imported here are run by go generate for the fakes in pkg/osfakes/osshim/osshimfakes and pkg/writers/writersfakes.
