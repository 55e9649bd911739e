package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/bbarker/listnr-tools/internal/config"
	"github.com/bbarker/listnr-tools/internal/subst"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Limit = 40
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	src := "# Greeting\n\nHello there, reader.\n"
	chunks := New(nil, testConfig()).Run(src)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %v", len(chunks), chunks)
	}
	if chunks[0].Text != "Greeting Hello there, reader." {
		t.Errorf("unexpected chunk text %q", chunks[0].Text)
	}
	if chunks[0].Index != 0 {
		t.Errorf("expected index 0, got %d", chunks[0].Index)
	}
	if chunks[0].Length != len("Greeting Hello there, reader.") {
		t.Errorf("expected length %d, got %d", len("Greeting Hello there, reader."), chunks[0].Length)
	}
}

func TestRun_SubstitutionBeforeParsing(t *testing.T) {
	// The table rewrites the raw text, so a substitution can produce new
	// markdown structure that the parser then sees.
	table, err := subst.NewTable([]subst.Rule{{From: "INSERT", To: "`code`"}})
	if err != nil {
		t.Fatal(err)
	}

	chunks := New(table, testConfig()).Run("before INSERT after\n")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %v", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0].Text, "code") || strings.Contains(chunks[0].Text, "`") {
		t.Errorf("expected substitution parsed as inline code, got %q", chunks[0].Text)
	}
}

func TestRun_OversizedCodeBlockElided(t *testing.T) {
	listing := strings.Repeat("x", 100)
	src := "Intro.\n\n```\n" + listing + "\n```\n"

	cfg := config.Default()
	chunks := New(nil, cfg).Run(src)

	joined := ""
	for _, c := range chunks {
		joined += c.Text
	}
	if strings.Contains(joined, listing) {
		t.Error("expected oversized listing to be elided")
	}
	if !strings.Contains(joined, cfg.ElisionPlaceholder) {
		t.Errorf("expected placeholder in output, got %q", joined)
	}
}

func TestRun_ShortCodeBlockPreserved(t *testing.T) {
	src := "Intro.\n\n```\nshort listing\n```\n"
	chunks := New(nil, config.Default()).Run(src)

	joined := ""
	for _, c := range chunks {
		joined += c.Text
	}
	if !strings.Contains(joined, "short listing") {
		t.Errorf("expected short listing preserved, got %q", joined)
	}
}

func TestRun_InlineCodeNeverElided(t *testing.T) {
	span := strings.Repeat("y", 120)
	src := "Text with `" + span + "` span.\n"

	cfg := config.Default()
	chunks := New(nil, cfg).Run(src)

	joined := ""
	for _, c := range chunks {
		joined += c.Text
	}
	if !strings.Contains(joined, span) {
		t.Error("inline code must pass through regardless of length")
	}
}

func TestRun_EmptyDocument(t *testing.T) {
	if chunks := New(nil, testConfig()).Run(""); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty document, got %v", chunks)
	}
}

func TestRun_ChunkIndexesAreSequential(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("A reasonably sized paragraph of filler text.\n\n")
	}
	cfg := config.Default()
	cfg.Limit = 80
	chunks := New(nil, cfg).Run(b.String())

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d: expected index %d, got %d", i, i, c.Index)
		}
	}
}

func TestRunBytes_RejectsInvalidUTF8(t *testing.T) {
	_, err := New(nil, testConfig()).RunBytes([]byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestRunBytes_ValidInput(t *testing.T) {
	chunks, err := New(nil, testConfig()).RunBytes([]byte("plain text"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].Text != "plain text" {
		t.Errorf("expected [plain text], got %v", chunks)
	}
}
