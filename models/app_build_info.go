// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags into each
// service binary. It is logged once at startup.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are replaced with
// "N/A" so that unversioned local builds still log a complete record.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
