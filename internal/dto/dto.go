package dto

import (
	"github.com/shopspring/decimal"

	"lenscraft-server/internal/model"
)

type Instructor struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (i Instructor) Model() model.Instructor {
	return model.Instructor{Name: i.Name, Email: i.Email}
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type UpdateRoleRequest struct {
	Role model.Role `json:"role" validate:"required,oneof=student instructor admin"`
}

type RoleResponse struct {
	Role model.Role `json:"role"`
}

type CreateClassRequest struct {
	Name  string          `json:"name" validate:"required"`
	Image string          `json:"image"`
	Seats int             `json:"seats" validate:"min=0"`
	Price decimal.Decimal `json:"price"`
}

type ModerateClassRequest struct {
	Action model.ClassStatus `json:"action" validate:"required,oneof=approved denied"`
}

type AddCartItemRequest struct {
	ClassID    string          `json:"classId" validate:"required"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `json:"price"`
	Instructor Instructor      `json:"instructor"`
	Email      string          `json:"email" validate:"required,email"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type SavePaymentRequest struct {
	CartItemID    string          `json:"cartItemId" validate:"required"`
	ClassID       string          `json:"classId" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
	TransactionID string          `json:"transactionId" validate:"required"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	EnrolledCount int   `json:"enrolledCount"`
}

// SavePaymentResponse reports the outcome of each write of a committed enrollment.
type SavePaymentResponse struct {
	Result       *model.PaymentRecord `json:"result"`
	DeleteResult DeleteResult         `json:"deleteResult"`
	UpdateResult UpdateResult         `json:"updateResult"`
}

type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
