// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

//nolint:revive // var-naming: avoid package names that conflict with Go standard library package names
package version

// Version is filled on compilation time via -ldflags "-X github.com/lima-vm/tzoffset/pkg/version.Version=...".
var Version = "<unknown>"
