package reader

import "github.com/newsroom/newsdesk/app/news"

// ArticleView is an article annotated with its current bookmark state.
// The flag is computed at read time from the bookmark set, never stored
// on the catalog record.
type ArticleView struct {
	news.Article
	Bookmarked bool `json:"bookmarked"`
}

// View is a snapshot of the reader state.
type View struct {
	Category news.Category `json:"category"`
	Query    string        `json:"query"`
	Loading  bool          `json:"loading"`
	Articles []ArticleView `json:"articles"`
}

// Annotate projects articles into views using set membership. Pure;
// preserves order.
func Annotate(articles []news.Article, bookmarked map[string]bool) []ArticleView {
	views := make([]ArticleView, len(articles))
	for i, a := range articles {
		views[i] = ArticleView{Article: a, Bookmarked: bookmarked[a.ID]}
	}
	return views
}
