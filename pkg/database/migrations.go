package database

import (
	"context"
	"fmt"
	"time"

	"ridehail/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationsCollection = "migrations"

type Migration struct {
	Version     int
	Description string
	Up          func(context.Context, *mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	log        *logger.Logger
	migrations []Migration
}

func NewMigrator(db *mongo.Database, log *logger.Logger) *Migrator {
	return &Migrator{
		db:         db,
		log:        log,
		migrations: getMigrations(),
	}
}

// Up applies every migration newer than the recorded version.
func (m *Migrator) Up(ctx context.Context) error {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}

		log := m.log.WithFields(map[string]interface{}{
			"version":     migration.Version,
			"description": migration.Description,
		})
		log.Info("Running migration")

		if err := migration.Up(ctx, m.db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if err := m.updateVersion(ctx, migration.Version); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}

		log.Info("Migration completed")
	}

	return nil
}

func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(ctx context.Context, version int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.db.Collection(migrationsCollection).ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)
	return err
}

func getMigrations() []Migration {
	return []Migration{
		{Version: 1, Description: "Create customers indexes", Up: createCustomersIndexes},
		{Version: 2, Description: "Create drivers indexes", Up: createDriversIndexes},
		{Version: 3, Description: "Create admins indexes", Up: createAdminsIndexes},
		{Version: 4, Description: "Create vehicles indexes", Up: createVehiclesIndexes},
		{Version: 5, Description: "Create rides indexes", Up: createRidesIndexes},
		{Version: 6, Description: "Create complaints indexes", Up: createComplaintsIndexes},
		{Version: 7, Description: "Create payments indexes", Up: createPaymentsIndexes},
	}
}

func unique(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
}

func plain(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys}
}

func createIndexes(ctx context.Context, db *mongo.Database, collection string, indexes []mongo.IndexModel) error {
	_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
	return err
}

func createCustomersIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "customers", []mongo.IndexModel{
		unique(bson.D{{Key: "email", Value: 1}}),
		unique(bson.D{{Key: "num_phone", Value: 1}}),
	})
}

func createDriversIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "drivers", []mongo.IndexModel{
		unique(bson.D{{Key: "email", Value: 1}}),
		unique(bson.D{{Key: "license_num", Value: 1}}),
		plain(bson.D{{Key: "created_at", Value: -1}}),
	})
}

func createAdminsIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "admins", []mongo.IndexModel{
		unique(bson.D{{Key: "username", Value: 1}}),
	})
}

func createVehiclesIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "vehicles", []mongo.IndexModel{
		unique(bson.D{{Key: "registration_num", Value: 1}}),
		plain(bson.D{{Key: "driver_id", Value: 1}}),
	})
}

func createRidesIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "rides", []mongo.IndexModel{
		plain(bson.D{{Key: "status", Value: 1}}),
		plain(bson.D{{Key: "cust_id", Value: 1}}),
		plain(bson.D{{Key: "driver_id", Value: 1}}),
	})
}

func createComplaintsIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "complaints", []mongo.IndexModel{
		plain(bson.D{{Key: "status", Value: 1}}),
	})
}

func createPaymentsIndexes(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "payments", []mongo.IndexModel{
		unique(bson.D{{Key: "ride_id", Value: 1}}),
	})
}
