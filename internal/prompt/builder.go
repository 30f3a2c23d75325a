package prompt

import (
	"fmt"

	"github.com/iisyw/OGit/internal/changelog"
)

// ConventionalTypes is the fixed set of commit type prefixes offered by
// the interactive builder.
var ConventionalTypes = []string{
	"feat", "fix", "docs", "style", "refactor",
	"perf", "test", "build", "ci", "chore",
}

// PlaceholderTitle is substituted when the operator submits an empty
// title. The boundary coerces rather than rejects, so a bare Enter still
// produces a valid entry.
const PlaceholderTitle = "Normal Update"

// BuildEntry interactively assembles a commit message: an optional
// conventional-commit type prefix, a title, and body lines collected
// until an empty line.
func (p *Prompter) BuildEntry() changelog.Entry {
	prefix := ""
	if p.Confirm("Prefix the title with a conventional commit type?", false) {
		idx := p.SelectOne("Commit type", ConventionalTypes, 0)
		prefix = ConventionalTypes[idx] + ": "
	}

	title := p.Input("Commit title", "")
	if title == "" {
		return changelog.Entry{Title: PlaceholderTitle}
	}

	fmt.Fprintln(p.out, "Body lines (one per line, empty line to finish):")
	var body []string
	for i := 1; ; i++ {
		line := p.Input(fmt.Sprintf("Line %d", i), "")
		if line == "" {
			break
		}
		body = append(body, line)
	}

	return changelog.Entry{Title: prefix + title, Body: body}
}
