package version

import (
	"fmt"
	"runtime"
)

// Current is the version of the binary, set at build time via ldflags.
var Current = "dev"

// String renders the version together with the build environment.
func String() string {
	return fmt.Sprintf("%s (%s, %s/%s)", Current, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
