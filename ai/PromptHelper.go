package ai

// SQLPromptTemplate describes the STUDENT table and the output rules the
// model is asked to follow. The rules are instructions only; nothing
// downstream relies on them being honored.
const SQLPromptTemplate = `
You are an expert in converting English questions into SQL queries.

Database name: STUDENT

Columns:
- NAME (TEXT)
- CLASS (TEXT)
- SECTION (TEXT)
- MARKS (INTEGER)

Rules:
- Only generate SELECT queries
- Do NOT generate INSERT, UPDATE, DELETE, DROP
- Do NOT include ` + "```" + ` or the word sql
- Output only pure SQL

Examples:

Question: Show all students
SQL: SELECT * FROM STUDENT;

Question: Show students with marks above 80
SQL: SELECT * FROM STUDENT WHERE MARKS > 80;
`

// BuildSQLPrompt appends the user's question to the prompt template.
func BuildSQLPrompt(question string) string {
	return SQLPromptTemplate + "\n\nQuestion: " + question
}
