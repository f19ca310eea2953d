package models

import (
	"time"
)

// Order statuses. Orders are created as pending before payment confirmation
// arrives from the provider redirect and are never transitioned in-process.
const (
	OrderStatusPending = "pending"
)

// Package tiers offered on the packages page
const (
	PackageStarter = "starter"
	PackagePro     = "pro"
	PackagePremium = "premium"
)

// Order represents one checkout attempt, independent of payment outcome.
// The same struct is persisted by both store backends: bson tags for the
// document store, gorm tags for the relational one.
type Order struct {
	ID          string    `bson:"_id,omitempty" gorm:"primaryKey;size:24" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Product     string    `bson:"product" json:"product"`
	PackageType string    `bson:"packageType" json:"package_type"`
	LogoPath    *string   `bson:"logoPath,omitempty" json:"logo_path"`   // nullable, filename under the upload dir
	MockupPath  *string   `bson:"mockupPath,omitempty" json:"mockup_path"` // nullable, set when compositing succeeds
	Status      string    `bson:"status" gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// LogoFile returns the stored logo filename, or "" when no file was uploaded
func (o Order) LogoFile() string {
	if o.LogoPath == nil {
		return ""
	}
	return *o.LogoPath
}

// MockupFile returns the generated mockup filename, or "" when compositing
// was skipped or failed
func (o Order) MockupFile() string {
	if o.MockupPath == nil {
		return ""
	}
	return *o.MockupPath
}
