package types

// Standard table names for Store.GetTable.
const (
	QuestionsTable = "questions"
	AnswersTable   = "answers"
	LinksTable     = "answer_links"
	ReviewsTable   = "reviews"
	TrustTable     = "trust_lists"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	QuestionsTable,
	AnswersTable,
	LinksTable,
	ReviewsTable,
	TrustTable,
}
