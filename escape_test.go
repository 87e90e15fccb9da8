package bsonjson

import (
	"testing"

	"go.uber.org/zap"
)

func newTestTranscoder(in []byte, outCap int) *Transcoder {
	sink := newOutputSink(ModeRealloc, make([]byte, outCap), false, zap.NewNop())
	return &Transcoder{in: in, inLen: len(in), sink: sink, maxDepth: defaultMaxDepth}
}

func TestEscapeBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		in    string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"tab and newline", "a\tb\nc", `a\tb\nc`},
		{"quote and backslash", "\"\\", `\"\\`},
		{"other control char escapes as \\u", "a\x01b", "a\\u0001b"},
		{"del is not a control escape target", "a\x7fb", "a\x7fb"},
		{"high byte passes through", "a\xffb", "a\xffb"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			tr := newTestTranscoder([]byte(c.in), 64)
			if tr.escapeBytes(len(c.in)) {
				t.Fatalf("unexpected sink failure: %v", tr.sink.err)
			}
			got := string(tr.sink.out[:tr.sink.outIdx])
			if got != c.want {
				t.Fatalf("escapeBytes(%q) = %q, want %q", c.in, got, c.want)
			}
			if tr.inIdx != len(c.in) {
				t.Fatalf("inIdx = %d, want %d", tr.inIdx, len(c.in))
			}
		})
	}
}

func TestEscapeCString(t *testing.T) {
	t.Parallel()

	in := []byte("key\twith\ttabs\x00trailing garbage")
	tr := newTestTranscoder(in, 64)
	if tr.escapeCString() {
		t.Fatalf("unexpected sink failure: %v", tr.sink.err)
	}
	got := string(tr.sink.out[:tr.sink.outIdx])
	if want := `key\twith\ttabs`; got != want {
		t.Fatalf("escapeCString = %q, want %q", got, want)
	}
	if in[tr.inIdx] != 0 {
		t.Fatalf("escapeCString should leave inIdx pointing at the null terminator")
	}
}
