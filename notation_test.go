package main

import "testing"

func TestReplaceNotations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Bonjour tout le monde",
			want:  "Bonjour tout le monde",
		},
		{
			name:  "bold pair",
			input: "**bold**",
			want:  "<strong>bold</strong>",
		},
		{
			name:  "stray bold token left alone",
			input: "a ** b",
			want:  "a ** b",
		},
		{
			name:  "odd count leaves all tokens literal",
			input: "**one** and ** alone",
			want:  "**one** and ** alone",
		},
		{
			name:  "two bold pairs alternate",
			input: "**a** et **b**",
			want:  "<strong>a</strong> et <strong>b</strong>",
		},
		{
			name:  "oblique pair",
			input: "__doucement__",
			want:  `<span class="_pale _oblique">doucement</span>`,
		},
		{
			name:  "green pair",
			input: "_green_oui_green_",
			want:  `<span style="color: green;">oui</span>`,
		},
		{
			name:  "red pair",
			input: "_red_non_red_",
			want:  `<span style="color: red;">non</span>`,
		},
		{
			name:  "single green token untouched",
			input: "reste _green_ tel quel",
			want:  "reste _green_ tel quel",
		},
		{
			name:  "newline becomes line break",
			input: "ligne1\nligne2",
			want:  "ligne1<br />ligne2",
		},
		{
			name:  "bold inside oblique processed in order",
			input: "__**x**__",
			want:  `<span class="_pale _oblique"><strong>x</strong></span>`,
		},
		{
			// "__green__" matches the oblique token first, so the
			// green notation never sees a balanced pair.
			name:  "oblique consumes doubled underscores before green",
			input: "__green__",
			want:  `<span class="_pale _oblique">green</span>`,
		},
		{
			name:  "mixed notations",
			input: "**gras** puis _red_rouge_red_\nfin",
			want:  "<strong>gras</strong> puis " + `<span style="color: red;">rouge</span>` + "<br />fin",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := replaceNotations(tc.input); got != tc.want {
				t.Errorf("replaceNotations(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestReplaceBalanced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
		want  string
	}{
		{"even count", "**a**", "**", "<s>a</s>"},
		{"four tokens", "**a** **b**", "**", "<s>a</s> <s>b</s>"},
		{"odd count untouched", "**a** **", "**", "**a** **"},
		{"absent token", "abc", "**", "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := replaceBalanced(tc.input, tc.token, "<s>", "</s>"); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRewritePlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"name marker", "Bonjour [nom]", "Bonjour {{nickname}}"},
		{"multiple markers", "[nom] et [nom]", "{{nickname}} et {{nickname}}"},
		{"no marker", "Bonjour", "Bonjour"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := rewritePlaceholders(tc.input); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
