package ignore

// Matches reports whether an entry with the given basename is excluded.
// Directories are also tested with a trailing slash, so "build/" only
// ever excludes directories.
func (s RuleSet) Matches(basename string, isDir bool) bool {
	for _, r := range s.rules {
		if r.Match(basename, isDir) {
			s.log().Debug("ignore.Matches: %q (isDir: %v) excluded by rule %q", basename, isDir, r.Pattern)
			return true
		}
	}
	return false
}

// Match reports whether the rule excludes the entry.
func (r Rule) Match(basename string, isDir bool) bool {
	if r.glob.Match(basename) {
		return true
	}
	return isDir && r.glob.Match(basename+"/")
}
