// Package resolver computes the deduplicated import statements and install
// packages for an ordered capability selection.
package resolver
