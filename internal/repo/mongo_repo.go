package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mghazyfawazh/jadwalku/internal/models"
)

var ErrNotFound = errors.New("not found")

type MongoRepo struct {
	Coll *mongo.Collection
	Ctx  context.Context
}

func NewMongoRepo(coll *mongo.Collection) *MongoRepo {
	ctx := context.Background()

	// Index by date + class_code
	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "class_code", Value: 1},
		},
	})

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "teacher_nik", Value: 1},
		},
	})

	return &MongoRepo{Coll: coll, Ctx: ctx}
}

func (r *MongoRepo) Insert(s *models.Schedule) error {
	_, err := r.Coll.InsertOne(r.Ctx, s)
	return err
}

// InsertMany persists a whole import batch at once. An empty batch is a no-op.
func (r *MongoRepo) InsertMany(list []*models.Schedule) error {
	if len(list) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(list))
	for _, s := range list {
		docs = append(docs, s)
	}
	_, err := r.Coll.InsertMany(r.Ctx, docs)
	return err
}

func (r *MongoRepo) FindAll() ([]models.Schedule, error) {
	return r.find(bson.M{}, nil)
}

// FindByClassAndDate returns one class's periods for a single day,
// ordered by jam_ke.
func (r *MongoRepo) FindByClassAndDate(classCode, date string) ([]models.Schedule, error) {
	filter := bson.M{"class_code": classCode, "date": date}
	sort := bson.D{{Key: "jam_ke", Value: 1}}
	return r.find(filter, sort)
}

// FindByTeacherAndRange returns one teacher's periods inside [start, end],
// ordered by date then jam_ke. Dates are ISO strings so the range filter
// compares correctly as text.
func (r *MongoRepo) FindByTeacherAndRange(nik, start, end string) ([]models.Schedule, error) {
	filter := bson.M{
		"teacher_nik": nik,
		"date":        bson.M{"$gte": start, "$lte": end},
	}
	sort := bson.D{{Key: "date", Value: 1}, {Key: "jam_ke", Value: 1}}
	return r.find(filter, sort)
}

// FindByDateRange returns every period inside [start, end] in insertion order.
func (r *MongoRepo) FindByDateRange(start, end string) ([]models.Schedule, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	return r.find(filter, nil)
}

func (r *MongoRepo) find(filter bson.M, sort bson.D) ([]models.Schedule, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := r.Coll.Find(r.Ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(r.Ctx)

	var out []models.Schedule
	if err := cur.All(r.Ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) FindByUUID(uuid string) (*models.Schedule, error) {
	var s models.Schedule
	if err := r.Coll.FindOne(r.Ctx, bson.M{"uuid": uuid}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoRepo) UpdateByUUID(uuid string, update bson.M) error {
	res, err := r.Coll.UpdateOne(r.Ctx, bson.M{"uuid": uuid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteByUUID(uuid string) error {
	res, err := r.Coll.DeleteOne(r.Ctx, bson.M{"uuid": uuid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
