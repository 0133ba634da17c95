package docs

import (
	"strings"
	"testing"
)

func TestTopics_ListsEmbeddedContent(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "config,formats,picker" {
		t.Fatalf("unexpected topics %q", got)
	}
}

func TestGet_IsCaseInsensitiveAndRejectsPaths(t *testing.T) {
	body, ok := Get("Picker")
	if !ok || !strings.Contains(body, "# Date picker") {
		t.Fatalf("expected picker topic, ok=%v", ok)
	}
	if _, ok := Get("../docs"); ok {
		t.Fatalf("expected path-like topic to be rejected")
	}
}

func TestRender_PlainStyle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	body, _ := Get("formats")
	out, err := Render(body, 60)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "05 May 2025") {
		t.Fatalf("expected rendered example, got:\n%s", out)
	}
}
