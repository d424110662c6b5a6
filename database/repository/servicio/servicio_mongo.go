package servicioRepo

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

// MongoServicioRepo implements ServicioRepository using MongoDB.
type MongoServicioRepo struct {
	coll *mongo.Collection
}

// NewMongoServicioRepo creates a new instance of ServicioRepository using MongoDB.
func NewMongoServicioRepo() ServicioRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("servicios")
	repo := &MongoServicioRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the composite indexes backing the list queries.
func (r *MongoServicioRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "cliente_id", Value: 1}, {Key: "fecha_inicio", Value: 1}}},
		{Keys: bson.D{{Key: "tipo_servicio", Value: 1}, {Key: "fecha_inicio", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new servicio record.
func (r *MongoServicioRepo) Create(servicio *models.Servicio) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	servicio.Metadata.Creado = now
	servicio.Metadata.Actualizado = now

	if _, err := r.coll.InsertOne(ctx, servicio); err != nil {
		return fmt.Errorf("failed to create servicio: %w", err)
	}
	return nil
}

// GetByID retrieves a servicio by id.
func (r *MongoServicioRepo) GetByID(id string) (*models.Servicio, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var servicio models.Servicio
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&servicio); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch servicio with id %s: %w", id, err)
	}
	return &servicio, nil
}

// ListByCliente returns a client's servicios ordered by fecha_inicio ascending.
func (r *MongoServicioRepo) ListByCliente(clienteID string) ([]models.Servicio, error) {
	filter := bson.M{"cliente_id": clienteID}
	sort := bson.D{{Key: "cliente_id", Value: 1}, {Key: "fecha_inicio", Value: 1}}
	return r.list(filter, sort)
}

// ListByTipoServicio returns servicios of a type ordered by fecha_inicio descending.
func (r *MongoServicioRepo) ListByTipoServicio(tipoServicio string) ([]models.Servicio, error) {
	filter := bson.M{"tipo_servicio": tipoServicio}
	sort := bson.D{{Key: "tipo_servicio", Value: 1}, {Key: "fecha_inicio", Value: -1}}
	return r.list(filter, sort)
}

func (r *MongoServicioRepo) list(filter bson.M, sort bson.D) ([]models.Servicio, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to query servicios: %w", err)
	}
	defer cursor.Close(ctx)

	servicios := []models.Servicio{}
	for cursor.Next(ctx) {
		var s models.Servicio
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode servicio: %w", err)
		}
		servicios = append(servicios, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("servicio cursor error: %w", err)
	}
	return servicios, nil
}

// UpdateEstado sets the record's estado.
func (r *MongoServicioRepo) UpdateEstado(id, estado string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"estado":               estado,
		"metadata.actualizado": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update servicio %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("servicio with id %s not found", id)
	}
	return nil
}
