package handlers

import (
	"errors"
	"net/http"

	"intellisql/web"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", web.PageData{Page: "home"})
}

func (h *Handlers) AboutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", web.PageData{Page: "about"})
}

func (h *Handlers) QueryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "query.html", web.PageData{Page: "query"})
}

// QuerySubmit handles the "Get Answer" button. Every failure is rendered
// inline on the same page; nothing is kept for the next request.
func (h *Handlers) QuerySubmit(c *gin.Context) {
	question := c.PostForm("question")
	data := web.PageData{Page: "query", Question: question}

	sql, result, err := h.answer(c.Request.Context(), question)
	data.SQL = sql
	data.Result = result

	switch {
	case err == nil:
	case errors.Is(err, ErrEmptyQuestion):
		data.Warning = emptyQuestionWarning
	default:
		data.Error = err.Error()
	}

	c.HTML(http.StatusOK, "query.html", data)
}
