package handlers

import (
	"errors"
	"net/http"

	"intellisql/ai"
	"intellisql/models"
	"intellisql/service"
	"intellisql/validation"

	"github.com/gin-gonic/gin"
)

// TranslateHandler turns a question into candidate SQL without running it
// @Summary      Translate a question into SQL
// @Description  Sends the question with the STUDENT prompt template to Gemini and returns the trimmed reply
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest        true  "Question"
// @Success      200      {object}  models.TranslateResponse   "Candidate SQL"
// @Failure      400      {object}  map[string]string          "Empty question"
// @Failure      502      {object}  map[string]string          "Translation failed"
// @Router       /api/translate [post]
func (h *Handlers) TranslateHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if validation.IsBlankQuestion(req.Question) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyQuestion.Error()})
		return
	}

	sql, err := h.aiService.Translate(c.Request.Context(), req.Question)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.TranslateResponse{SQL: sql})
}

// ExecuteSQLHandler runs a SELECT statement against the student database
// @Summary      Execute SQL
// @Description  Runs the statement if it starts with SELECT and returns the full result set
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.ExecuteRequest  true  "SQL statement"
// @Success      200      {object}  models.SQLResult       "Result set"
// @Failure      400      {object}  map[string]string      "Statement is not a SELECT"
// @Failure      500      {object}  map[string]string      "Database error"
// @Router       /api/execute [post]
func (h *Handlers) ExecuteSQLHandler(c *gin.Context) {
	var req models.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.sqlService.Execute(c.Request.Context(), req.SQL)
	if err != nil {
		c.JSON(executeStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// QueryHandler translates a question and runs the resulting SQL
// @Summary      Answer a question
// @Description  Translation and execution in one call. On execution failure the generated SQL is still returned
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest   true  "Question"
// @Success      200      {object}  models.QueryResponse  "Generated SQL and result set"
// @Failure      400      {object}  models.QueryResponse  "Empty question or disallowed statement"
// @Failure      502      {object}  models.QueryResponse  "Translation failed"
// @Failure      500      {object}  models.QueryResponse  "Database error"
// @Router       /api/query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.QueryResponse{Error: "Invalid request"})
		return
	}

	sql, result, err := h.answer(c.Request.Context(), req.Question)
	if err != nil {
		var terr *ai.TranslationError
		status := executeStatus(err)
		switch {
		case errors.Is(err, ErrEmptyQuestion):
			status = http.StatusBadRequest
		case errors.As(err, &terr):
			status = http.StatusBadGateway
		}
		c.JSON(status, models.QueryResponse{SQL: sql, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.QueryResponse{SQL: sql, Result: result})
}

func executeStatus(err error) int {
	if errors.Is(err, service.ErrDisallowedStatement) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
