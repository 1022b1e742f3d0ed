// Package version reports the build version of fetchkit binaries.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/kbukum/fetchkit/version.Version=1.2.0"
//
// Missing values are filled from the module's VCS build settings.
package version
