package emit

import (
	"encoding/xml"
	"strings"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// EmitSitemap writes sitemap.xml: one entry per static route plus one per
// record slug, each with a last-modified date where known.
func (e *Emitter) EmitSitemap(snap Snapshot) error {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, route := range snap.Site.StaticRoutes {
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: snap.Site.BaseURL + route})
	}

	for _, p := range snap.Patterns {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     snap.Site.PatternURL(p.Slug),
			LastMod: p.UpdatedAt,
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	return writeFileAtomic(e.path(SitemapFile), out, 0644)
}
