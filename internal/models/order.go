package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	CustomerID uuid.UUID   `json:"customer_id" db:"customer_id"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}
