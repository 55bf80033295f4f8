package textio_test

import (
	"reflect"
	"testing"

	"github.com/sgryjp/cjkfmt/textio"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"\rb", []string{"\r", "b"}},
		{"\nb", []string{"\n", "b"}},
		{"\r\nb", []string{"\r\n", "b"}},
		{"a\n", []string{"a\n"}},
		{"a\r", []string{"a\r"}},
		{"a\r\n", []string{"a\r\n"}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\rb", []string{"a\r", "b"}},
		{"a\r\nb", []string{"a\r\n", "b"}},
		{"a\r亜", []string{"a\r", "亜"}},
		{"a\n亜", []string{"a\n", "亜"}},
		{"foo\r\nbar", []string{"foo\r\n", "bar"}},
		{"foo\nbar", []string{"foo\n", "bar"}},
	}

	for _, c := range cases {
		got := textio.Split(c.input)
		if !reflect.DeepEqual(got, c.expected) {
			t.Errorf("Split(%q) = %q, want %q", c.input, got, c.expected)
		}
	}
}
