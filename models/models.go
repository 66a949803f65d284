package models

type QueryRequest struct {
	Question string `json:"question" example:"Show all students"`
}

type TranslateResponse struct {
	SQL string `json:"sql" example:"SELECT * FROM STUDENT;"`
}

type ExecuteRequest struct {
	SQL string `json:"sql" example:"SELECT * FROM STUDENT WHERE MARKS > 80;"`
}

type QueryResponse struct {
	SQL    string     `json:"sql,omitempty"`
	Result *SQLResult `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// SQLResult is the materialized result set of one query. Rows keep the
// driver's value types (TEXT as string, INTEGER as int64, NULL as nil).
type SQLResult struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// Student is one row of the STUDENT table.
type Student struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Section string `json:"section"`
	Marks   int    `json:"marks"`
}
