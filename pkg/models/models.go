package models

import "time"

// User is the identity anchor. Email is an informal shared secret, not a
// verified identity; it is unique and immutable once set.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:128;not null"`
	CreatedAt time.Time `gorm:"index"`

	Ownerships []Ownership `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// Device is a physical sensor unit keyed by its manufacturer udid.
type Device struct {
	ID        uint   `gorm:"primaryKey"`
	Udid      string `gorm:"uniqueIndex;size:128;not null"`
	CreatedAt time.Time

	Ownerships []Ownership `gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`
	Readings   []Reading   `gorm:"foreignKey:DeviceID;references:ID;constraint:OnDelete:CASCADE"`
}

// Ownership links a user to a device it may see. Composite primary key, at
// most one row per (user, device) pair.
type Ownership struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false"`
	DeviceID  uint      `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"index"`
}

// Reading is one sensor sample. Append-only; CreatedAt is assigned by the
// server at write time on the fixed local-offset basis.
type Reading struct {
	ID           uint `gorm:"primaryKey"`
	DeviceID     uint `gorm:"not null;index"`
	Temp         float64
	MoistureDirt float64
	MoistureAir  float64
	RawSoil      *float64
	RawCalMin    *float64
	RawCalMax    *float64
	SoilType     *int
	CreatedAt    time.Time `gorm:"index"`
}
