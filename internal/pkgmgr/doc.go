// Package pkgmgr detects a project's JavaScript package manager from its
// lockfile and installs packages with it.
package pkgmgr
