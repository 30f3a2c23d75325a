package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iisyw/OGit/internal/changelog"
)

// EditAction is one step in the draft-editing menu.
type EditAction int

const (
	EditDone EditAction = iota
	EditRetitle
	EditAddLine
	EditDropLast
	EditClearBody
)

// ApplyEdit returns the entry after one edit action. It never mutates
// its input; arg carries the new title for EditRetitle and the added
// line for EditAddLine, and is ignored otherwise.
func ApplyEdit(action EditAction, e changelog.Entry, arg string) changelog.Entry {
	arg = strings.TrimSpace(arg)

	switch action {
	case EditRetitle:
		if arg != "" {
			e.Title = arg
		}
	case EditAddLine:
		if arg != "" {
			e.Body = append(slices.Clone(e.Body), arg)
		}
	case EditDropLast:
		if len(e.Body) > 0 {
			e.Body = slices.Clone(e.Body[:len(e.Body)-1])
		}
	case EditClearBody:
		e.Body = nil
	}
	return e
}

// editMenu mirrors the EditAction values by index.
var editMenu = []string{
	"keep as is",
	"change title",
	"add body line",
	"drop last body line",
	"clear body",
}

// EditEntry shows the draft and offers menu-driven re-editing until the
// operator keeps it.
func (p *Prompter) EditEntry(e changelog.Entry) changelog.Entry {
	for {
		fmt.Fprintf(p.out, "\nDraft commit message:\n%s\n\n", e.String())

		action := EditAction(p.SelectOne("Edit the draft?", editMenu, int(EditDone)))
		if action == EditDone {
			return e
		}

		arg := ""
		switch action {
		case EditRetitle:
			arg = p.Input("New title", e.Title)
		case EditAddLine:
			arg = p.Input("Body line", "")
		}
		e = ApplyEdit(action, e, arg)
	}
}
