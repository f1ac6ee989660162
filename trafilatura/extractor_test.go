package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiPage is a trimmed CakePHP API reference page.
const apiPage = `<!DOCTYPE html>
<html>
<head>
<title>Class Table | CakePHP 5.x API</title>
<meta property="og:title" content="Cake\ORM\Table">
</head>
<body>
<nav class="navbar">
<ul>
<li><a href="/5.x/">Home</a></li>
<li><a href="/5.x/namespace-Cake.ORM.html">Cake\ORM</a></li>
<li><a href="/5.x/namespace-Cake.Http.html">Cake\Http</a></li>
</ul>
</nav>
<main>
<article>
<h1>Class Table</h1>
<p>Represents a single database table. Exposes methods for retrieving data out of it and manages the associations this table has to other tables.</p>
<h2>Method save()</h2>
<p>Persists an entity based on the fields that are marked as dirty and returns the same entity after a successful save or false in case of any error.</p>
<pre><code class="language-php">$article = $articles->newEmptyEntity();
$articles->save($article);
</code></pre>
</article>
</main>
<footer class="site-footer">
<p>Copyright 2005 Cake Software Foundation</p>
</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(apiPage)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(apiPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Represents a single database table")
		assert.Contains(t, result.ContentHTML, "marked as dirty")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(apiPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "navbar")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(apiPage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Cake Software Foundation")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(apiPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "newEmptyEntity()")
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", " \n\t"} {
			_, err := trafilatura.NewExtractor().Extract(input)
			require.Error(t, err)
			assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
		}
	})
}
