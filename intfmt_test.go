package bsonjson

import "testing"

func TestAppendInt64(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{9, "9"},
		{10, "10"},
		{99, "99"},
		{100, "100"},
		{-100, "-100"},
		{1234567890, "1234567890"},
		{9223372036854775807, "9223372036854775807"},
		{-9223372036854775808, "-9223372036854775808"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()
			got := string(appendInt64(nil, c.in))
			if got != c.want {
				t.Fatalf("appendInt64(%d) = %s, want %s", c.in, got, c.want)
			}
		})
	}
}

func TestAppendInt32(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int32
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{2147483647, "2147483647"},
		{-2147483648, "-2147483648"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.want, func(t *testing.T) {
			t.Parallel()
			got := string(appendInt32(nil, c.in))
			if got != c.want {
				t.Fatalf("appendInt32(%d) = %s, want %s", c.in, got, c.want)
			}
		})
	}
}

func TestDigitCountOfSmallPositive(t *testing.T) {
	t.Parallel()

	// The count includes the string's null terminator, so it is always one
	// more than the number of decimal digits.
	cases := []struct {
		in   int32
		want int
	}{
		{0, 2},
		{9, 2},
		{10, 3},
		{99, 3},
		{100, 4},
		{999999999, 10},
		{1000000000, 11},
	}

	for _, c := range cases {
		got := digitCountOfSmallPositive(c.in)
		if got != c.want {
			t.Errorf("digitCountOfSmallPositive(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
