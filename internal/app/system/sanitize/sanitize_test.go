package sanitize

import (
	"strings"
	"testing"
)

func TestContent_StripsScript(t *testing.T) {
	got := Content(`hello <script>alert("x")</script>`)
	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Errorf("script survived: %q", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("plain text lost: %q", got)
	}
}

func TestContent_StripsEventHandlers(t *testing.T) {
	got := Content(`<b onclick="steal()">bold</b>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler survived: %q", got)
	}
	if !strings.Contains(got, "<b>bold</b>") {
		t.Errorf("basic formatting lost: %q", got)
	}
}

func TestContent_PlainTextUnchanged(t *testing.T) {
	in := "just a normal comment"
	if got := Content(in); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}
