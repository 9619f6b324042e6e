package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username    string             `json:"username" bson:"username"`
	Password    string             `json:"-" bson:"password,omitempty"`
	Permissions Permissions        `json:"permissions" bson:"permissions"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// Permissions is an admin's permission list. A request may send a list of
// strings or a single string. null, false, 0 and "" decode as absent (nil).
type Permissions []string

func (p *Permissions) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case nil:
		*p = nil
	case bool:
		if value {
			return fmt.Errorf("permissions: unsupported value true")
		}
		*p = nil
	case float64:
		if value != 0 {
			return fmt.Errorf("permissions: unsupported number %v", value)
		}
		*p = nil
	case string:
		if value == "" {
			*p = nil
			return nil
		}
		*p = Permissions{value}
	case []interface{}:
		list := make(Permissions, 0, len(value))
		for i, item := range value {
			name, ok := item.(string)
			if !ok {
				return fmt.Errorf("permissions[%d]: want a string, got %T", i, item)
			}
			list = append(list, name)
		}
		*p = list
	default:
		return fmt.Errorf("permissions: unsupported %T", value)
	}
	return nil
}
