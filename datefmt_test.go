package bsonjson

import "testing"

func TestAppendDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		ms    int64
		want  string
	}{
		{"epoch", 0, "1970-01-01T00:00:00.000Z"},
		{"one second after epoch", 1000, "1970-01-01T00:00:01.000Z"},
		{"one millisecond before epoch", -1, "1969-12-31T23:59:59.999Z"},
		{"one second before epoch", -1000, "1969-12-31T23:59:59.000Z"},
		{"exact millisecond precision", 1234, "1970-01-01T00:00:01.234Z"},
		{"y2k", 946684800000, "2000-01-01T00:00:00.000Z"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			got := string(appendDate(nil, c.ms))
			if got != c.want {
				t.Fatalf("appendDate(%d) = %s, want %s", c.ms, got, c.want)
			}
			if len(got) != isoDateLen {
				t.Fatalf("appendDate(%d) length = %d, want %d", c.ms, len(got), isoDateLen)
			}
		})
	}
}
