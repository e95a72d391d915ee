package markdown

import (
	"strings"
	"testing"
)

func TestParseAndRenderRoundTrip(t *testing.T) {
	t.Parallel()
	note, err := Parse("---\ndate: \"2026-03-01\"\ncompletion_rate: 75\n---\n\n# Day\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if note.Meta["date"] != "2026-03-01" || note.Meta["completion_rate"] != 75 {
		t.Fatalf("unexpected meta: %#v", note.Meta)
	}
	if note.Body != "\n# Day\n" {
		t.Fatalf("unexpected body: %q", note.Body)
	}
	rendered, err := note.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\ncompletion_rate: 75\ndate: \"2026-03-01\"\n---\n") {
		t.Fatalf("unexpected render: %q", rendered)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	note, err := Parse("plain text")
	if err != nil || note.Body != "plain text" || len(note.Meta) != 0 {
		t.Fatalf("unexpected note: %#v %v", note, err)
	}
	if _, err := Parse("---\ndate: x\nno closing"); err == nil {
		t.Fatalf("expected error for unterminated frontmatter")
	}
}

func TestBlockReplaceKeepsUserText(t *testing.T) {
	t.Parallel()
	b := Block{Start: "<!-- s -->", End: "<!-- e -->"}
	body := b.Replace("my reflections\n", "first")
	if !strings.HasPrefix(body, "my reflections\n\n<!-- s -->\nfirst\n<!-- e -->") {
		t.Fatalf("unexpected first write: %q", body)
	}
	body = b.Replace(body+"after\n", "second")
	if strings.Contains(body, "first") || !strings.Contains(body, "second") {
		t.Fatalf("block not replaced: %q", body)
	}
	if !strings.HasPrefix(body, "my reflections") || !strings.HasSuffix(body, "after\n") {
		t.Fatalf("user text lost: %q", body)
	}
	got, ok := b.Extract(body)
	if !ok || got != "second" {
		t.Fatalf("extract: %q %v", got, ok)
	}
}

func TestMergeOverridesKeys(t *testing.T) {
	t.Parallel()
	note := Note{Meta: map[string]any{"mood": "good", "date": "old"}}
	merged := note.Merge(map[string]any{"date": "new"})
	if merged.Meta["mood"] != "good" || merged.Meta["date"] != "new" || note.Meta["date"] != "old" {
		t.Fatalf("unexpected merge: %#v / %#v", merged.Meta, note.Meta)
	}
}
