package mongodb

import (
	"context"
	"regexp"
	"strings"

	domainerrors "boral/internal/domain/errors"
	"boral/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultListLimit caps a list query whose caller passes a non-positive limit.
const defaultListLimit = 1000

// excludeMongoID keeps Mongo's _id out of decoded documents.
var excludeMongoID = bson.D{{Key: "_id", Value: 0}}

// containsFold matches values containing query, case-insensitively. Regex metacharacters in query are escaped.
func containsFold(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

// anyFieldContains builds an $or over fields, each matching containsFold(query).
func anyFieldContains(query string, fields ...string) bson.D {
	pattern := containsFold(query)

	clauses := make(bson.A, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, bson.D{{Key: field, Value: pattern}})
	}

	return bson.D{{Key: "$or", Value: clauses}}
}

func limitOrDefault(limit int) int64 {
	if limit <= 0 {
		return defaultListLimit
	}

	return int64(limit)
}

func findOptions(limit int, sort bson.D) *options.FindOptions {
	opts := options.Find().
		SetProjection(excludeMongoID).
		SetLimit(limitOrDefault(limit))
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	return opts
}

// findAll runs a query and decodes every document into T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions, op string) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return docs, nil
}

// aggregateAll runs a pipeline and decodes every result into T.
func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, op string) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}
	defer cursor.Close(ctx)

	rows := make([]T, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return rows, nil
}

// duplicateKeyIndex returns the index name named in a duplicate-key error, or "" if err is not one.
func duplicateKeyIndex(err error) string {
	if !mongo.IsDuplicateKeyError(err) {
		return ""
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if idx := indexFromMessage(we.Message); idx != "" {
				return idx
			}
		}
	}

	return indexFromMessage(err.Error())
}

// indexFromMessage extracts "name" from "... index: name dup key: ...".
func indexFromMessage(msg string) string {
	_, after, found := strings.Cut(msg, "index: ")
	if !found {
		return ""
	}

	name, _, _ := strings.Cut(after, " ")

	return name
}
