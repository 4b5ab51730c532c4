package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	text := strings.Repeat("word ", 10)

	wrapped := Wrap(text, 20)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 20 {
			t.Errorf("line longer than width: %q", line)
		}
	}
}

func TestWrapZeroWidthUsesDefault(t *testing.T) {
	testutil.AssertEqual(t, "short text untouched", Wrap("hello", 0), "hello")
}
