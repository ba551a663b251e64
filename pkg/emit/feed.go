package emit

import (
	"github.com/gorilla/feeds"
)

// EmitFeed writes the RSS feed: the most recently updated records, newest
// first, capped at FeedSize.
func (e *Emitter) EmitFeed(snap Snapshot) error {
	feed := &feeds.Feed{
		Title:       snap.Site.Title,
		Link:        &feeds.Link{Href: snap.Site.BaseURL + "/"},
		Description: snap.Site.Description,
	}

	size := e.FeedSize
	if size <= 0 {
		size = DefaultFeedSize
	}

	recent := byUpdatedDesc(snap.Patterns)
	if len(recent) > size {
		recent = recent[:size]
	}

	for _, p := range recent {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          p.ID,
			Title:       p.Title,
			Link:        &feeds.Link{Href: snap.Site.PatternURL(p.Slug)},
			Description: p.Summary,
			Created:     p.UpdatedTime(),
		})
	}

	if len(feed.Items) > 0 {
		feed.Created = feed.Items[0].Created
	}

	rss, err := feed.ToRss()
	if err != nil {
		return err
	}
	return writeFileAtomic(e.path(FeedFile), []byte(rss+"\n"), 0644)
}
