// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata that was not injected at link
// time.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into a binary with
// -ldflags. Blank values read as NotAvailable.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// String renders a one-line summary for logs.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
