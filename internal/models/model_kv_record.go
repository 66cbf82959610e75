package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVRecord is one durable key-value entry. Values are opaque JSON blobs owned
// by the service that wrote them.
type KVRecord struct {
	Key       string         `gorm:"column:key;type:varchar(191);primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"column:value;type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVRecord) TableName() string {
	return "kv_record"
}
