package profileRepo

import (
	"context"
	"fmt"
	"time"

	"labura/config"
	"labura/database"
	"labura/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("usuarios")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "correo_electronico", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "nombre_usuario", Value: 1}, {Key: "fecha_registro", Value: -1}}},
		{Keys: bson.D{
			{Key: "servicios_ofrecidos.categoria", Value: 1},
			{Key: "servicios_ofrecidos.tipo_servicio", Value: 1},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a profile by its identity id using a
// projection. Pass nil for projection to retrieve the full document.
func (r *MongoProfileRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByEmailWithProjection retrieves a profile by its email using a
// projection. Pass nil for projection to retrieve the full document.
func (r *MongoProfileRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"correo_electronico": email}, opts).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with email %s: %w", email, err)
	}
	return &profile, nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// Update modifies an existing profile document.
func (r *MongoProfileRepo) Update(profile *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	filter := bson.M{"id": profile.ID}
	update := bson.M{"$set": profile}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with id %s not found", profile.ID)
	}
	return nil
}

// SetFields applies a partial merge write onto the document.
func (r *MongoProfileRepo) SetFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to set fields on profile %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with id %s not found", id)
	}
	return nil
}

// SetOffering stores the offering as the single-element servicios_ofrecidos
// array. The write replaces the whole array rather than appending; the read
// side still matches with $elemMatch, so at most one offering per profile
// can exist through this path.
func (r *MongoProfileRepo) SetOffering(id string, offering models.ServiceOffering, serviceName string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"servicios_ofrecidos": []models.ServiceOffering{offering},
			"updated_at":          time.Now(),
		},
		"$addToSet": bson.M{"servicios": serviceName},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set offering on profile %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with id %s not found", id)
	}
	return nil
}

// FindByOffering returns profiles advertising the given (categoria,
// tipo_servicio) pair, in backend order.
func (r *MongoProfileRepo) FindByOffering(categoria, tipoServicio string) ([]models.Profile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"servicios_ofrecidos": bson.M{"$elemMatch": bson.M{
		"categoria":     categoria,
		"tipo_servicio": tipoServicio,
	}}}
	opts := options.Find().SetProjection(bson.M{"password_hash": 0, "token_hash": 0})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer cursor.Close(ctx)

	providers := []models.Profile{}
	for cursor.Next(ctx) {
		var p models.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("provider cursor error: %w", err)
	}
	return providers, nil
}

// GetByID retrieves a profile by its identity id (full document).
func (r *MongoProfileRepo) GetByID(id string) (*models.Profile, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a profile by its email address (full document).
func (r *MongoProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	return r.GetByEmailWithProjection(email, nil)
}
