package normalizer

import "regexp"

// Comment exclusion covers the common single-line comment syntaxes. Block
// comments spanning multiple lines are deliberately not matched; only a
// complete /* ... */ on one line counts.
var commentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*#.*`),
	regexp.MustCompile(`^\s*//.*`),
	regexp.MustCompile(`^\s*/\*.*\*/\s*$`),
}

func isCommentLine(line string) bool {
	for _, p := range commentPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
