package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

// Plan tiers mirrored on the user row; the subscriptions table holds the
// detailed record, these fields drive application-level gating.
const (
	FreePlan = "Free Plan"
	ProPlan  = "Pro Plan"
)

const PlanStatusActive = "Active"

type User struct {
	ID                    string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email                 string     `json:"email" gorm:"uniqueIndex;not null"`
	Password              string     `json:"-"`
	Name                  string     `json:"name"`
	Role                  Role       `json:"role" gorm:"type:varchar(20);default:'USER'"`
	Plan                  string     `json:"plan" gorm:"default:'Free Plan'"`
	PlanStatus            string     `json:"planStatus"`
	SubscriptionStartDate *time.Time `json:"subscriptionStartDate"`
	SubscriptionEndDate   *time.Time `json:"subscriptionEndDate"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// UserCreate is the register and login request body.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
