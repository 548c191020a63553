//nolint:testpackage // using package name 'benchmark' to reach the internal matcher
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-clargs/internal/fuzzy"
)

// Category: fuzzy (exported paths only)

var identifiers = []string{
	"--help", "-h", "--version", "--verbose", "-v", "--config", "--output", "-o",
	"--input", "-i", "--force", "--debug", "--port", "--host", "--timeout", "--max-retries",
}

func BenchmarkMatcher_FindBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("--hepl", identifiers)
	}
}

func BenchmarkMatcher_FindMatches(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindMatches("--ver", identifiers)
	}
}

func BenchmarkConvenienceFunctions(b *testing.B) {
	b.Run("FindBestIdentifier", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.FindBestIdentifier("-verbose", identifiers, 2)
		}
	})
	b.Run("FindSuggestions", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.FindSuggestions("--prot", identifiers, 2, 3)
		}
	})
}
