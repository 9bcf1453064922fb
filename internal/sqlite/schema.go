// Package sqlite implements the SQLite storage backend for Lore.
package sqlite

// Schema DDL for all tables. The database file is durable across runs,
// so every statement is idempotent (IF NOT EXISTS).
const (
	createQuestions = `CREATE TABLE IF NOT EXISTS questions (
    question_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    author_id INTEGER NOT NULL,
    preferred_answer_id INTEGER,
    token_set TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createAnswers = `CREATE TABLE IF NOT EXISTS answers (
    answer_id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    author_id INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createAnswerLinks = `CREATE TABLE IF NOT EXISTS answer_links (
    link_id INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_kind TEXT NOT NULL,
    parent_id INTEGER NOT NULL,
    child_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createReviews = `CREATE TABLE IF NOT EXISTS reviews (
    review_id INTEGER PRIMARY KEY AUTOINCREMENT,
    for_question INTEGER NOT NULL,
    related_id INTEGER NOT NULL,
    text TEXT NOT NULL,
    author_id INTEGER NOT NULL,
    vote_total INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createTrustEntries = `CREATE TABLE IF NOT EXISTS trust_entries (
    truster_id INTEGER NOT NULL,
    reviewer_id INTEGER NOT NULL,
    weight INTEGER NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (truster_id, reviewer_id)
);`
)

// Index DDL for common queries. The unique index on answer_links is what
// enforces the no-duplicate-entries invariant on every parent list.
const (
	idxLinksUnique     = `CREATE UNIQUE INDEX IF NOT EXISTS idx_answer_links_unique ON answer_links(parent_kind, parent_id, child_id);`
	idxLinksParent     = `CREATE INDEX IF NOT EXISTS idx_answer_links_parent ON answer_links(parent_kind, parent_id, position);`
	idxLinksChild      = `CREATE INDEX IF NOT EXISTS idx_answer_links_child ON answer_links(child_id);`
	idxReviewsAuthor   = `CREATE INDEX IF NOT EXISTS idx_reviews_author ON reviews(author_id);`
	idxReviewsRelated  = `CREATE INDEX IF NOT EXISTS idx_reviews_related ON reviews(for_question, related_id);`
	idxQuestionsAuthor = `CREATE INDEX IF NOT EXISTS idx_questions_author ON questions(author_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createQuestions,
	createAnswers,
	createAnswerLinks,
	createReviews,
	createTrustEntries,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxLinksUnique,
	idxLinksParent,
	idxLinksChild,
	idxReviewsAuthor,
	idxReviewsRelated,
	idxQuestionsAuthor,
}
