// Package version provides build version information for the toolkit.
//
// The resolved version feeds the identifying User-Agent header that httpwire
// appends to every outbound request. Resolution order: -ldflags overrides,
// then module build metadata, then the fixed fallback "0.0.0".
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags.
	Version   = ""
	GitCommit = ""
	BuildTime = ""
)

// Fallback is the version reported when no build metadata is available.
const Fallback = "0.0.0"

// Product is the name component of the identifying header value.
const Product = "authkit"

// Info represents resolved version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// Get returns version information resolved from ldflags and build metadata.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Version == "" {
			info.Version = moduleVersion(bi)
		}
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" && len(setting.Value) >= 7 {
					info.GitCommit = setting.Value[:7]
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = Fallback
	}
	info.IsRelease = info.Version != Fallback && !strings.Contains(info.Version, "dirty")
	return info
}

func moduleVersion(bi *debug.BuildInfo) string {
	v := bi.Main.Version
	if v == "" || v == "(devel)" {
		return ""
	}
	return strings.TrimPrefix(v, "v")
}

// String returns the resolved version value. It is never empty.
func String() string {
	return Get().Version
}

// UserAgent returns the identifying header value sent with outbound
// requests, in the form "authkit/<version>".
func UserAgent() string {
	return fmt.Sprintf("%s/%s", Product, String())
}
