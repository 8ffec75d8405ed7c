package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Part struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	Quantity         int32              `bson:"quantity" json:"quantity"`
	MinOrderQuantity int32              `bson:"minOrderQuantity,omitempty" json:"minOrderQuantity,omitempty"`
	SupplierName     string             `bson:"supplierName,omitempty" json:"supplierName,omitempty"`
	SupplierEmail    string             `bson:"supplierEmail,omitempty" json:"supplierEmail,omitempty"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PartID        string             `bson:"partId" json:"partId"`
	PartName      string             `bson:"partName,omitempty" json:"partName,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Quantity      int32              `bson:"quantity" json:"quantity"`
	Price         float64            `bson:"price" json:"price"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email,omitempty" json:"email,omitempty"`
	Rating int32              `bson:"rating" json:"rating"`
	Text   string             `bson:"text,omitempty" json:"text,omitempty"`
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // empty or "admin"
}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// Profile is keyed by email so a user's profile upsert always targets their
// own record.
type Profile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Education   string             `bson:"education,omitempty" json:"education,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	PhoneNumber string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ProfileLink string             `bson:"profileLink,omitempty" json:"profileLink,omitempty"`
}
