// Package filter decides which directory entries a listing shows.
//
// Three policies are combined: dotfiles are hidden unless ShowAll is set, an
// optional .gitignore removes ignored entries, and an optional glob pattern
// selects which of the remaining entries render their own line. The pattern
// never decides recursion; a directory that does not match may still hold
// matching descendants.
package filter

import (
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
)

const (
	hiddenPrefix         = "."
	pathSegmentSeparator = "/"
	currentDirectoryName = "."
	parentDirectoryName  = ".."
)

// Pattern is a glob compiled once before traversal.
type Pattern struct {
	source    string
	matcher   glob.Glob
	matchPath bool
}

// Compile compiles a glob pattern. "*" and "?" never cross a "/", "**" does,
// and "[...]" and "{a,b}" behave as usual. A pattern without "/" is matched
// against entry names; one with "/" against the path relative to the listing
// root. An empty pattern yields a nil Pattern and no error.
func Compile(source string) (*Pattern, error) {
	if source == "" {
		return nil, nil
	}
	matcher, compileError := glob.Compile(source, '/')
	if compileError != nil {
		return nil, compileError
	}
	return &Pattern{
		source:    source,
		matcher:   matcher,
		matchPath: strings.Contains(source, pathSegmentSeparator),
	}, nil
}

// String returns the pattern as supplied.
func (pattern *Pattern) String() string {
	if pattern == nil {
		return ""
	}
	return pattern.source
}

// Match reports whether the entry at relativePath, whose final component is
// name, matches the pattern. A nil Pattern matches everything.
func (pattern *Pattern) Match(relativePath string, name string) bool {
	if pattern == nil {
		return true
	}
	if pattern.matchPath {
		return pattern.matcher.Match(strings.TrimPrefix(relativePath, "./"))
	}
	return pattern.matcher.Match(name)
}

// Predicate classifies entries under the active hidden-file policy, ignore
// file and pattern. The zero value shows every non-hidden entry.
type Predicate struct {
	ShowAll bool
	Pattern *Pattern
	Ignore  *ignore.GitIgnore
}

// IsHiddenName reports whether name is a dotfile. "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == currentDirectoryName || name == parentDirectoryName {
		return false
	}
	return strings.HasPrefix(name, hiddenPrefix)
}

// Hidden reports whether the dotfile policy removes the entry.
func (predicate Predicate) Hidden(name string) bool {
	return !predicate.ShowAll && IsHiddenName(name)
}

// Ignored reports whether the .gitignore removes the entry. Directories are
// checked with a trailing slash so directory-only rules apply to them.
func (predicate Predicate) Ignored(relativePath string, isDirectory bool) bool {
	if predicate.Ignore == nil {
		return false
	}
	if isDirectory {
		return predicate.Ignore.MatchesPath(relativePath + pathSegmentSeparator)
	}
	return predicate.Ignore.MatchesPath(relativePath)
}

// Excluded reports whether the entry is removed entirely: it prints nothing
// and is never descended into.
func (predicate Predicate) Excluded(relativePath string, name string, isDirectory bool) bool {
	return predicate.Hidden(name) || predicate.Ignored(relativePath, isDirectory)
}

// Matches reports whether the pattern selects the entry. Without a pattern
// every entry matches.
func (predicate Predicate) Matches(relativePath string, name string) bool {
	return predicate.Pattern.Match(relativePath, name)
}

// Visible reports whether the entry renders its own line.
func (predicate Predicate) Visible(relativePath string, name string, isDirectory bool) bool {
	return !predicate.Excluded(relativePath, name, isDirectory) && predicate.Matches(relativePath, name)
}
