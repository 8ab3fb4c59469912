package outline

import (
	"testing"
	"time"
)

func TestOutline_Python(t *testing.T) {
	content := "import os\n\nclass Greeter:\n    def greet(self):\n        pass\n\ndef main():\n    pass\n"
	p := NewPatternProvider(time.Second)

	items, err := p.Outline("/tmp/app.py", content)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3: %+v", len(items), items)
	}
	if items[0].Name != "Greeter" || items[0].Type != "class" || items[0].LineNumber != 3 {
		t.Errorf("items[0] = %+v, want class Greeter at line 3", items[0])
	}
	if items[1].Name != "greet" || items[1].Type != "function" {
		t.Errorf("items[1] = %+v, want function greet", items[1])
	}
	if items[2].Name != "main" || items[2].LineNumber != 7 {
		t.Errorf("items[2] = %+v, want main at line 7", items[2])
	}

	// Elements run until the next one starts.
	if items[0].EndLine != 3 {
		t.Errorf("items[0].EndLine = %d, want 3", items[0].EndLine)
	}
	if items[2].LineCount < 1 {
		t.Errorf("items[2].LineCount = %d, want >= 1", items[2].LineCount)
	}
}

func TestOutline_Go(t *testing.T) {
	content := "package x\n\ntype Thing struct{}\n\nfunc (t *Thing) Do() {}\n\nfunc Standalone() {}\n"
	p := NewPatternProvider(time.Second)

	items, err := p.Outline("/src/thing.go", content)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3: %+v", len(items), items)
	}
	if items[0].Type != "type" || items[0].Name != "Thing" {
		t.Errorf("items[0] = %+v, want type Thing", items[0])
	}
	if items[1].Name != "Do" {
		t.Errorf("items[1] = %+v, want method Do", items[1])
	}
}

func TestOutline_MarkdownHeadings(t *testing.T) {
	content := "# Title\n\nbody\n\n## Section One\n\nmore body\n"
	p := NewPatternProvider(time.Second)

	items, err := p.Outline("/docs/readme.md", content)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2: %+v", len(items), items)
	}
	if items[0].Name != "Title" || items[1].Name != "Section One" {
		t.Errorf("headings = %q, %q, want Title, Section One", items[0].Name, items[1].Name)
	}
}

func TestOutline_UnknownLanguage(t *testing.T) {
	p := NewPatternProvider(time.Second)

	items, err := p.Outline("/data/blob.xyz-unknown", "def f():\n")
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0 for unknown language", len(items))
	}
}
