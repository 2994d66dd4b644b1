package version

import (
	"fmt"
	"runtime/debug"
)

const modulePath = "github.com/skillsenselab/webtest"

// Version is set at build time using -ldflags; "dev" otherwise.
var Version = "dev"

// Get returns the module version: the -ldflags value when set, else the
// module version recorded in build info, else "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := fromBuildInfo(info); v != "" {
			return v
		}
	}
	return Version
}

// fromBuildInfo finds the module's recorded version. The module is Main when
// its own tests run and a Dep when it is imported by the module under test.
func fromBuildInfo(info *debug.BuildInfo) string {
	if info.Main.Path == modulePath && usable(info.Main.Version) {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath && usable(dep.Version) {
			return dep.Version
		}
	}
	return ""
}

func usable(v string) bool {
	return v != "" && v != "(devel)"
}

// UserAgent returns the User-Agent string test clients send by default.
func UserAgent() string {
	return fmt.Sprintf("webtest/%s", Get())
}
