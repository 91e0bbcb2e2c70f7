package titles

import "testing"

func TestNeedsRefinement(t *testing.T) {
	tests := []struct {
		name      string
		remaining string
		res       Result
		hints     Hints
		want      bool
	}{
		{"short clean leftover", "The Shawshank Redemption", Result{}, Hints{}, false},
		{"empty leftover", "", Result{}, Hints{}, false},
		{"whitespace leftover", "   ", Result{}, Hints{}, false},
		{"digits in leftover", "Blade Runner 2049 AMZN", Result{}, Hints{}, true},
		{"too many words", "one two three four five six seven", Result{}, Hints{}, true},
		{"movie hint with year tolerates digits", "Blade Runner 2049", Result{Year: 2017}, Hints{Kind: "movie"}, false},
		{"movie hint without year keeps digits ambiguous", "Blade Runner 2049", Result{}, Hints{Kind: "movie"}, true},
		{"series hint does not relax digits", "Show 12 Extra", Result{Year: 2020}, Hints{Kind: "series"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NeedsRefinement(tc.remaining, tc.res, tc.hints); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
