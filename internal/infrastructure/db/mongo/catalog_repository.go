package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

const collectionProducts = "products"

// CatalogRepository persists products in MongoDB and translates retrieval
// plans into the driver's query dialect.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionProducts)}
}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Category    *string            `bson:"category,omitempty"`
	Brand       *string            `bson:"brand,omitempty"`
	Rating      *float64           `bson:"rating,omitempty"`
}

func (d productDoc) toDomain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Brand:       d.Brand,
		Rating:      d.Rating,
	}
}

// planFilter translates a plan's filter conditions into a bson filter.
// An inverted price interval produces an unsatisfiable $gte/$lte pair and
// deterministically matches nothing.
func planFilter(plan domain.Plan) bson.M {
	filter := bson.M{}
	if plan.Category != nil {
		filter["category"] = *plan.Category
	}
	if plan.Brand != nil {
		filter["brand"] = *plan.Brand
	}

	price := bson.M{}
	if plan.MinPrice != nil {
		price["$gte"] = *plan.MinPrice
	}
	if plan.MaxPrice != nil {
		price["$lte"] = *plan.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// planOptions translates a plan's sort and pagination into find options.
func planOptions(plan domain.Plan) *options.FindOptions {
	opts := options.Find()
	if plan.SortBy != "" {
		opts.SetSort(bson.D{{Key: plan.SortBy, Value: 1}})
	}
	if plan.Skip > 0 {
		opts.SetSkip(plan.Skip)
	}
	if plan.Limit > 0 {
		opts.SetLimit(plan.Limit)
	}
	return opts
}

// Find returns the products matching the plan, in plan order.
func (r *CatalogRepository) Find(ctx context.Context, plan domain.Plan) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, planFilter(plan), planOptions(plan))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}
	return products, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot reference a stored product.
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	product := doc.toDomain()
	return &product, nil
}

// Insert stores a new product and returns it with its store-assigned id.
func (r *CatalogRepository) Insert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := productDoc{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		Rating:      p.Rating,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	doc.ID = oid
	product := doc.toDomain()
	return &product, nil
}

// UpdateByID applies a partial field replace and returns the updated
// product.
func (r *CatalogRepository) UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Brand != nil {
		set["brand"] = *patch.Brand
	}
	if patch.Rating != nil {
		set["rating"] = *patch.Rating
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc productDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	product := doc.toDomain()
	return &product, nil
}

func (r *CatalogRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the catalog filters.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
