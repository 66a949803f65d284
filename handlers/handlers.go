package handlers

import (
	"context"
	"errors"
	"time"

	"intellisql/ai"
	"intellisql/cache"
	"intellisql/logger"
	"intellisql/models"
	"intellisql/validation"
)

// @title           IntelliSQL API
// @version         1.0
// @description     Translate English questions about the STUDENT table into SQL with Gemini and run them against the local SQLite database.

// @host      localhost:8501
// @BasePath  /

// @schemes   http

var ErrEmptyQuestion = errors.New("question is empty")

const emptyQuestionWarning = "Please enter a question"

// QueryExecutor runs candidate SQL against the student database.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) (*models.SQLResult, error)
	Ping(ctx context.Context) error
}

type Handlers struct {
	aiService  ai.Translator
	sqlService QueryExecutor
	cache      *cache.Cache
	modelName  string
}

func New(aiService ai.Translator, sqlService QueryExecutor, appCache *cache.Cache, modelName string) *Handlers {
	if appCache == nil {
		appCache = cache.New(30 * time.Second)
	}
	return &Handlers{
		aiService:  aiService,
		sqlService: sqlService,
		cache:      appCache,
		modelName:  modelName,
	}
}

// answer runs one question through translation and execution. The returned
// SQL is set as soon as translation succeeded, so callers can show it even
// when execution failed.
func (h *Handlers) answer(ctx context.Context, question string) (string, *models.SQLResult, error) {
	if validation.IsBlankQuestion(question) {
		return "", nil, ErrEmptyQuestion
	}

	sql, err := h.aiService.Translate(ctx, question)
	if err != nil {
		return "", nil, err
	}

	result, err := h.sqlService.Execute(ctx, sql)
	if err != nil {
		logger.Warn().Err(err).Str("sql", sql).Msg("query execution failed")
		return sql, nil, err
	}

	logger.Info().Int("rows", len(result.Rows)).Str("sql", sql).Msg("query executed")
	return sql, result, nil
}
