package services

import "testing"

func TestGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good night"},
		{5, "Good night"},
		{6, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{13, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}
	for _, tc := range cases {
		if got := Greeting(tc.hour); got != tc.want {
			t.Fatalf("hour %d: got %q want %q", tc.hour, got, tc.want)
		}
	}
}
