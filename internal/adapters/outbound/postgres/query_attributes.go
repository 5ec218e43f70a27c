package postgres

import (
	"context"
	"database/sql/driver"
	"log"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

var queryNormalizer = sqllexer.NewNormalizer(
	sqllexer.WithCollectTables(true),
	sqllexer.WithCollectCommands(true),
	sqllexer.WithCollectComments(false),
)

// withQueryAttributes labels query and exec spans with a "COMMAND table" summary
// so the vector index statements are told apart in traces.
func withQueryAttributes(logger *log.Logger) func(context.Context, otelsql.Method, string, []driver.NamedValue) []attribute.KeyValue {
	return func(_ context.Context, method otelsql.Method, query string, _ []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		commands, tables := summarizeQuery(logger, query)
		if len(commands) == 0 && len(tables) == 0 {
			return nil
		}

		tableList := strings.Join(tables, ",")
		attrs := []attribute.KeyValue{
			semconv.DBQuerySummary(strings.TrimSpace(strings.Join(commands, ",") + " " + tableList)),
		}
		if tableList != "" {
			attrs = append(attrs, semconv.DBCollectionName(tableList))
		}
		return attrs
	}
}

// summarizeQuery returns the SQL commands and tables referenced by query.
func summarizeQuery(logger *log.Logger, query string) (commands []string, tables []string) {
	_, meta, err := queryNormalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitDB: failed to summarize query: %v", err)
		return nil, nil
	}
	return meta.Commands, meta.Tables
}
