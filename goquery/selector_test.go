package goquery_test

import (
	"testing"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classPage = "https://api.cakephp.org/5.x/class-Cake.ORM.Table.html"

func urls(links []docboost.DiscoveredLink) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.URL
	}
	return out
}

func TestLinkSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("assigns priority by page region", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="sidebar"><a href="class-Cake.ORM.Query.html">Query</a></div>
<nav><a href="/5.x/namespaces.html">Namespaces</a></nav>
<main><a href="class-Cake.ORM.Entity.html">Entity</a></main>
<footer><a href="/5.x/about.html">About</a></footer>
</body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, classPage)
		require.NoError(t, err)

		assert.Equal(t, []docboost.DiscoveredLink{
			{URL: "https://api.cakephp.org/5.x/class-Cake.ORM.Query.html", Priority: docboost.PriorityTOC, Text: "Query", Source: "toc"},
			{URL: "https://api.cakephp.org/5.x/namespaces.html", Priority: docboost.PriorityNavigation, Text: "Namespaces", Source: "nav"},
			{URL: "https://api.cakephp.org/5.x/class-Cake.ORM.Entity.html", Priority: docboost.PriorityContent, Text: "Entity", Source: "content"},
			{URL: "https://api.cakephp.org/5.x/about.html", Priority: docboost.PriorityFooter, Text: "About", Source: "footer"},
		}, links)
	})

	t.Run("duplicate URLs keep highest priority and first position", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main>
<a href="class-Cake.ORM.Entity.html">Entity</a>
<a href="class-Cake.ORM.Query.html">Query</a>
</main>
<aside><a href="class-Cake.ORM.Query.html#methods">Query methods</a></aside>
</body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, classPage)
		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://api.cakephp.org/5.x/class-Cake.ORM.Query.html", links[0].URL)
		assert.Equal(t, docboost.PriorityTOC, links[0].Priority)
		assert.Equal(t, "https://api.cakephp.org/5.x/class-Cake.ORM.Entity.html", links[1].URL)
		assert.Equal(t, docboost.PriorityContent, links[1].Priority)
	})

	t.Run("skips external, non-HTTP and self links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<a href="https://github.com/cakephp/cakephp">GitHub</a>
<a href="https://book.cakephp.org/5/en/orm.html">Book</a>
<a href="mailto:team@cakephp.org">Mail</a>
<a href="javascript:void(0)">Toggle</a>
<a href="#method-save">save()</a>
<a href="">empty</a>
<a href="class-Cake.ORM.Entity.html">Entity</a>
</main></body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, classPage)
		require.NoError(t, err)

		assert.Equal(t, []string{"https://api.cakephp.org/5.x/class-Cake.ORM.Entity.html"}, urls(links))
	})

	t.Run("fallback collects unmarked links below the page directory", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="flex">
<a href="class-Cake.ORM.Entity.html">Entity</a>
<a href="/4.x/class-Cake.ORM.Entity.html">Old Entity</a>
</div></body></html>`

		links, err := goquery.NewLinkSelector().ExtractLinks(html, classPage)
		require.NoError(t, err)

		require.Len(t, links, 1)
		assert.Equal(t, "https://api.cakephp.org/5.x/class-Cake.ORM.Entity.html", links[0].URL)
		assert.Equal(t, docboost.PriorityFallback, links[0].Priority)
		assert.Equal(t, "fallback", links[0].Source)
	})

	t.Run("fallback disabled", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><a href="class-Cake.ORM.Entity.html">Entity</a></div></body></html>`

		s := &goquery.LinkSelector{Rules: goquery.DefaultRules}
		links, err := s.ExtractLinks(html, classPage)
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("custom rules", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul class="class-list"><li><a href="class-Cake.Http.Client.html">  Client
</a></li></ul></body></html>`

		s := &goquery.LinkSelector{Rules: []goquery.Rule{
			{Selector: ".class-list a[href]", Priority: docboost.PriorityTOC, Source: "classes"},
		}}
		links, err := s.ExtractLinks(html, classPage)
		require.NoError(t, err)

		require.Len(t, links, 1)
		assert.Equal(t, "classes", links[0].Source)
		assert.Equal(t, "Client", links[0].Text)
	})

	t.Run("returns EINVALID for invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkSelector().ExtractLinks("<html></html>", "://bad")
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
	})
}
