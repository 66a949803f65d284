package validation

import "testing"

func TestIsBlankQuestion(t *testing.T) {
	cases := map[string]bool{
		"":                  true,
		"   ":               true,
		"\t\n":              true,
		"Show all students": false,
		"  x  ":             false,
	}
	for input, want := range cases {
		if got := IsBlankQuestion(input); got != want {
			t.Fatalf("IsBlankQuestion(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsSelectStatement(t *testing.T) {
	tests := []struct {
		sql  string
		want bool
	}{
		{"SELECT * FROM STUDENT;", true},
		{"select name from student", true},
		{"  \n SeLeCt MARKS FROM STUDENT", true},
		{"DROP TABLE STUDENT;", false},
		{"DELETE FROM STUDENT", false},
		{"WITH t AS (SELECT 1) SELECT * FROM t", false},
		{"```sql\nSELECT * FROM STUDENT;\n```", false},
		{"", false},
		// prefix check only, stacked statements are not detected
		{"SELECT 1; DROP TABLE STUDENT;", true},
	}
	for _, tt := range tests {
		if got := IsSelectStatement(tt.sql); got != tt.want {
			t.Fatalf("IsSelectStatement(%q) = %v, want %v", tt.sql, got, tt.want)
		}
	}
}
