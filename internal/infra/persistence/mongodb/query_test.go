package mongodb

import (
	"testing"

	"boral/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestContainsFold_EscapesMetacharacters(t *testing.T) {
	re := containsFold("c++ (beta)")

	assert.Equal(t, `c\+\+ \(beta\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestAnyFieldContains(t *testing.T) {
	filter := anyFieldContains("tea", "name", "description")

	is := assert.New(t)
	is.Len(filter, 1)
	is.Equal("$or", filter[0].Key)

	clauses, ok := filter[0].Value.(bson.A)
	is.True(ok)
	is.Len(clauses, 2)
	is.Equal("description", clauses[1].(bson.D)[0].Key)
}

func TestLimitOrDefault(t *testing.T) {
	assert.EqualValues(t, defaultListLimit, limitOrDefault(0))
	assert.EqualValues(t, defaultListLimit, limitOrDefault(-5))
	assert.EqualValues(t, 50, limitOrDefault(50))
}

func TestDuplicateKeyIndex(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: boral.users index: users_email_unique dup key: { email: "a@b.c" }`,
	}}}

	assert.Equal(t, idxUsersEmail, duplicateKeyIndex(dup))
	assert.Equal(t, idxUsersEmail, duplicateKeyIndex(errors.Wrap(dup, "insert user")))
	assert.Empty(t, duplicateKeyIndex(errors.New("connection reset")))
}

func TestIndexFromMessage(t *testing.T) {
	assert.Equal(t, "reviews_store_user_unique", indexFromMessage("dup index: reviews_store_user_unique dup key"))
	assert.Empty(t, indexFromMessage("no index here"))
}
