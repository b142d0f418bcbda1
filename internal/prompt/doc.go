// Package prompt walks the user through an injection with numbered menus on
// an io.Reader/io.Writer pair: capability selection, language, module format,
// injection path and, when no lockfile was found, the package manager.
package prompt
