// Command server runs java-service: a greeting endpoint plus its OpenAPI
// document and documentation page.
package main

import (
	"context"
	"os"

	applog "github.com/example/java-service/internal/platform/logging"
)

// Version is set at build time: -ldflags "-X main.Version=1.2.3".
// When empty, the module version from the build info is used, then "dev".
var Version string

func main() {
	os.Exit(run())
}

func run() int {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		applog.LogError(context.Background(), "command failed", err)
		return 1
	}
	return 0
}
