package docboost_test

import (
	"testing"

	"github.com/fwojciec/docboost"
	"github.com/stretchr/testify/assert"
)

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"h1", "# Saving Data\n\nUse save().", "Saving Data"},
		{"h2 before h1", "intro\n\n## Finding Data\n# Later", "Finding Data"},
		{"closing hashes", "### Routing ###\n", "Routing"},
		{"ignores code blocks", "```php\n# not a heading\n```\n\n# Real Heading", "Real Heading"},
		{"no heading", "plain text only", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docboost.FirstHeading(tt.markdown))
		})
	}
}
