package tooling

import "testing"

func TestSplitFirstLine(t *testing.T) {
	line, rest := SplitFirstLine("#type vertex\nvoid main() {}\n")
	if line != "#type vertex" {
		t.Errorf("unexpected first line: %q", line)
	}
	if rest != "void main() {}\n" {
		t.Errorf("unexpected rest: %q", rest)
	}

	line, rest = SplitFirstLine("single line without break")
	if line != "single line without break" || rest != "" {
		t.Errorf("text without line break should come back whole, got %q / %q", line, rest)
	}

	line, rest = SplitFirstLine("windows line\r\nbody")
	if line != "windows line" {
		t.Errorf("CR should be dropped from the first line, got %q", line)
	}
	if rest != "body" {
		t.Errorf("unexpected rest after CRLF: %q", rest)
	}

	line, rest = SplitFirstLine("\nleading break")
	if line != "" || rest != "leading break" {
		t.Errorf("leading break should yield an empty first line, got %q / %q", line, rest)
	}

	line, rest = SplitFirstLine("")
	if line != "" || rest != "" {
		t.Errorf("empty input should stay empty, got %q / %q", line, rest)
	}
}

func TestStripLeadingSpace(t *testing.T) {
	if s := StripLeadingSpace("\n\r\t  #type vertex"); s != "#type vertex" {
		t.Errorf("whitespace prefix not stripped: %q", s)
	}
	if s := StripLeadingSpace("no prefix"); s != "no prefix" {
		t.Errorf("text without prefix should be untouched: %q", s)
	}
	if s := StripLeadingSpace(" \n\t "); s != "" {
		t.Errorf("whitespace-only input should become empty: %q", s)
	}
	if s := StripLeadingSpace("trailing stays \n"); s != "trailing stays \n" {
		t.Errorf("trailing whitespace should survive: %q", s)
	}
}
