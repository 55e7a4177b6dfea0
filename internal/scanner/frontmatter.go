package scanner

import "strings"

// splitFrontmatter splits a MODULE.md document into its YAML frontmatter and
// body. Returns ok=false when the document carries no frontmatter block.
func splitFrontmatter(content string) (frontmatter, body string, ok bool) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return "", content, false
	}
	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return "", content, false
	}
	return strings.TrimSpace(parts[1]), strings.TrimPrefix(parts[2], "\n"), true
}

// firstParagraph returns the first non-empty, non-heading line of a markdown
// body, used as a description fallback.
func firstParagraph(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}
