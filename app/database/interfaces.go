package database

type BookmarkRepository interface {
	Toggle(articleID string) (bool, error)
	IsBookmarked(articleID string) (bool, error)
	GetIDs() ([]string, error)
	GetIDSet() (map[string]bool, error)
	GetBookmarks() ([]Bookmark, error)
	Count() (int, error)
}

type PreferenceRepository interface {
	Get() (Preferences, error)
	Set(prefs Preferences) error
}
