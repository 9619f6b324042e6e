package mongodb

import (
	"errors"
	"fmt"

	"ridehail/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/mongo"
)

// translateError maps driver errors onto the repository sentinels.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, interfaces.ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, interfaces.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func matchedOrNotFound(op string, result *mongo.UpdateResult) error {
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, interfaces.ErrNotFound)
	}
	return nil
}
