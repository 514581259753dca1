package naming

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMapLetterRuns(t *testing.T) {
	bracket := func(run string) string { return "[" + run + "]" }

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single letter", input: "a", want: "[a]"},
		{name: "single separator", input: "-", want: "-"},
		{name: "two words", input: "john doe", want: "[john] [doe]"},
		{name: "leading and trailing separators", input: " ann. ", want: " [ann]. "},
		{name: "apostrophe splits runs", input: "d'artagnan", want: "[d]'[artagnan]"},
		{name: "hyphen splits runs", input: "marie-josée", want: "[marie]-[josée]"},
		{name: "digits are separators", input: "abc123def", want: "[abc]123[def]"},
		{name: "unicode letters", input: "Guðmundsdóttir", want: "[Guðmundsdóttir]"},
		{name: "consecutive separators", input: "a, b", want: "[a], [b]"},
		{name: "combining mark joins preceding letter", input: "jose\u0301 maria", want: "[jose\u0301] [maria]"},
		{name: "leading combining mark is a separator", input: "\u0301ana", want: "\u0301[ana]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapLetterRuns(tt.input, bracket)
			assert.Equal(t, tt.want, got, "MapLetterRuns(%q)", tt.input)
		})
	}
}

func TestMapLetterRuns_Identity(t *testing.T) {
	input := "  J. R. R. Tolkien, 3rd -- O'Brien's  "
	got := MapLetterRuns(input, func(run string) string { return run })
	assert.Equal(t, input, got)
}

func TestWordCaser_Capitalize(t *testing.T) {
	w := NewWordCaser(language.Und)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "j", want: "J"},
		{name: "single uppercase letter", input: "J", want: "J"},
		{name: "lowercase word", input: "jean", want: "Jean"},
		{name: "uppercase word", input: "DOE", want: "Doe"},
		{name: "mixed case", input: "jEan", want: "Jean"},
		{name: "inner capital", input: "tRemblay", want: "Tremblay"},
		{name: "accented", input: "BENoît", want: "Benoît"},
		{name: "icelandic", input: "GUÐMUNDSDÓTTIR", want: "Guðmundsdóttir"},
		{name: "single accented letter", input: "é", want: "É"},
		{name: "decomposed accent", input: "JOSE\u0301", want: "Jose\u0301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Capitalize(tt.input), "Capitalize(%q)", tt.input)
		})
	}
}

func TestWordCaser_Language(t *testing.T) {
	assert.Equal(t, language.Dutch, NewWordCaser(language.Dutch).Language())
	assert.Equal(t, language.Und, NewWordCaser(language.Und).Language())
}

func TestWordCaser_DutchDigraph(t *testing.T) {
	w := NewWordCaser(language.Dutch)
	assert.Equal(t, "IJsbrand", w.Capitalize("ijsbrand"))
}

func TestWordCaser_CapitalizeRuns(t *testing.T) {
	w := NewWordCaser(language.Und)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "all caps", input: "JOHN DOE", want: "John Doe"},
		{name: "hyphenated", input: "marie-josée LEBLANC", want: "Marie-Josée Leblanc"},
		{name: "initials", input: "j. r. r. tolkien", want: "J. R. R. Tolkien"},
		{name: "apostrophe", input: "D'ARTAGNAN", want: "D'Artagnan"},
		{name: "possessive", input: "o'brien's", want: "O'Brien'S"},
		{name: "only separators", input: " -- ", want: " -- "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.CapitalizeRuns(tt.input), "CapitalizeRuns(%q)", tt.input)
		})
	}
}

func TestWordCaser_Concurrent(t *testing.T) {
	w := NewWordCaser(language.Und)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "Macdonald Smith", w.CapitalizeRuns("MACDONALD smith"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkCapitalizeRuns(b *testing.B) {
	w := NewWordCaser(language.Und)
	input := strings.Repeat("GABRIELLA DELLA VALLE ", 8)
	for b.Loop() {
		_ = w.CapitalizeRuns(input)
	}
}
