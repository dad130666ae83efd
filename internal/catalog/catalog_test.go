package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoCatalogListActiveProducts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes products", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Thép Hòa Phát D10"},
				{Key: "description", Value: "Thép thanh vằn"},
				{Key: "price", Value: 185000.0},
				{Key: "unit", Value: "cây"},
				{Key: "category_name", Value: "Thép"},
				{Key: "weight", Value: 7.22},
				{Key: "tags", Value: bson.A{"móng", "cột"}},
				{Key: "is_active", Value: true},
			},
		))

		mc := &MongoCatalog{col: mt.Coll, timeout: defaultTimeoutForTest}
		products, err := mc.ListActiveProducts(context.Background())
		require.NoError(mt, err)
		require.Len(mt, products, 1)

		p := products[0]
		assert.Equal(mt, id, p.ID)
		assert.Equal(mt, "Thép Hòa Phát D10", p.Name)
		assert.Equal(mt, 185000.0, p.Price)
		assert.Equal(mt, "Thép", p.CategoryName)
		require.NotNil(mt, p.Weight)
		assert.Equal(mt, 7.22, *p.Weight)
		assert.Equal(mt, []string{"móng", "cột"}, p.Tags)
	})

	mt.Run("surfaces query errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "unauthorized",
		}))

		mc := &MongoCatalog{col: mt.Coll, timeout: defaultTimeoutForTest}
		_, err := mc.ListActiveProducts(context.Background())
		require.Error(mt, err)
		var cmdErr mongo.CommandError
		assert.ErrorAs(mt, err, &cmdErr)
	})
}

const defaultTimeoutForTest = 5 * time.Second
