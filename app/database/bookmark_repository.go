package database

import (
	"fmt"
)

var _ BookmarkRepository = (*BookmarkRepo)(nil)

// BookmarkRepo handles database operations for the bookmark set
type BookmarkRepo struct {
	db *DB
}

func NewBookmarkRepository(db *DB) *BookmarkRepo {
	return &BookmarkRepo{db: db}
}

// Toggle adds the article to the bookmark set if absent, removes it if
// present, and reports whether it is bookmarked afterwards. Applying it
// twice restores the original state.
func (r *BookmarkRepo) Toggle(articleID string) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM bookmarks WHERE article_id = ?", articleID)
	if err != nil {
		return false, fmt.Errorf("failed to remove bookmark: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	bookmarked := false
	if removed == 0 {
		if _, err := tx.Exec("INSERT INTO bookmarks (article_id) VALUES (?)", articleID); err != nil {
			return false, fmt.Errorf("failed to add bookmark: %w", err)
		}
		bookmarked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bookmark toggle: %w", err)
	}

	return bookmarked, nil
}

func (r *BookmarkRepo) IsBookmarked(articleID string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM bookmarks WHERE article_id = ?", articleID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return count > 0, nil
}

func (r *BookmarkRepo) GetIDs() ([]string, error) {
	rows, err := r.db.Query("SELECT article_id FROM bookmarks ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmark rows: %w", err)
	}

	return ids, nil
}

// GetIDSet returns the bookmark set keyed for O(1) membership tests.
func (r *BookmarkRepo) GetIDSet() (map[string]bool, error) {
	ids, err := r.GetIDs()
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *BookmarkRepo) GetBookmarks() ([]Bookmark, error) {
	rows, err := r.db.Query("SELECT article_id, created_at FROM bookmarks ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ArticleID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookmark rows: %w", err)
	}

	return bookmarks, nil
}

func (r *BookmarkRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM bookmarks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get bookmark count: %w", err)
	}
	return count, nil
}
