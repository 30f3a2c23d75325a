package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iisyw/OGit/internal/changelog"
	"github.com/stretchr/testify/assert"
)

func TestApplyEdit(t *testing.T) {
	t.Parallel()

	base := changelog.Entry{Title: "feat: X", Body: []string{"a", "b"}}

	tests := map[string]struct {
		action EditAction
		arg    string
		want   changelog.Entry
	}{
		"retitle": {
			action: EditRetitle,
			arg:    "fix: Y",
			want:   changelog.Entry{Title: "fix: Y", Body: []string{"a", "b"}},
		},
		"retitle with blank arg keeps title": {
			action: EditRetitle,
			arg:    "   ",
			want:   base,
		},
		"add line": {
			action: EditAddLine,
			arg:    "c",
			want:   changelog.Entry{Title: "feat: X", Body: []string{"a", "b", "c"}},
		},
		"add blank line is a no-op": {
			action: EditAddLine,
			arg:    "",
			want:   base,
		},
		"drop last": {
			action: EditDropLast,
			want:   changelog.Entry{Title: "feat: X", Body: []string{"a"}},
		},
		"clear body": {
			action: EditClearBody,
			want:   changelog.Entry{Title: "feat: X"},
		},
		"done leaves entry unchanged": {
			action: EditDone,
			want:   base,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ApplyEdit(tt.action, base, tt.arg))
		})
	}
}

func TestApplyEdit_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := changelog.Entry{Title: "feat: X", Body: []string{"a", "b"}}
	_ = ApplyEdit(EditDropLast, base, "")
	_ = ApplyEdit(EditAddLine, base, "c")

	assert.Equal(t, changelog.Entry{Title: "feat: X", Body: []string{"a", "b"}}, base)
}

func TestEditEntry(t *testing.T) {
	t.Parallel()

	// Change the title, add a line, then keep.
	input := "2\nfix: better title\n3\nextra detail\n1\n"
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out)

	got := p.EditEntry(changelog.Entry{Title: "feat: X", Body: []string{"a"}})
	assert.Equal(t, changelog.Entry{
		Title: "fix: better title",
		Body:  []string{"a", "extra detail"},
	}, got)
	assert.Contains(t, out.String(), "Draft commit message")
}

func TestEditEntry_KeepImmediately(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	entry := changelog.Entry{Title: "feat: X"}
	assert.Equal(t, entry, p.EditEntry(entry))
}
