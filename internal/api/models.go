package api

// Common request/response structures. Response field names mirror the raw
// driver result shapes the original clients consume.

// TokenResponse is the body returned by the token issue endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterUserRequest defines the payload for the user registration endpoint.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// RoleResponse is the body returned by the role lookup endpoint.
type RoleResponse struct {
	UserRole string `json:"userRole"`
}

// InsertResponse serializes an insert outcome. InsertedID is the hex
// ObjectID on success and null when a conflict sentinel is returned, in
// which case Message explains the conflict.
type InsertResponse struct {
	Message    string      `json:"message,omitempty"`
	InsertedID interface{} `json:"insertedId"`
}

// CountResponse carries a single collection count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// AgreementApplyRequest defines the payload for submitting a rental
// application.
type AgreementApplyRequest struct {
	UserName    string `json:"userName"`
	Email       string `json:"email"       validate:"required,email"`
	FloorNo     int    `json:"floorNo"`
	BlockName   string `json:"blockName"`
	ApartmentNo string `json:"apartmentNo"`
	Rent        int    `json:"rent"`
	ApartmentID string `json:"apartmentId" validate:"required"`
	RequestDate string `json:"requestDate"`
}

// DecisionRequest is the body of the admin decision endpoint; the decision
// itself arrives in query parameters.
type DecisionRequest struct {
	CurrentDate string `json:"currentDate"`
}

// AnnouncementRequest defines the payload for creating an announcement.
type AnnouncementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// CouponRequest defines the payload for creating a coupon.
type CouponRequest struct {
	Code        string `json:"code"     validate:"required"`
	Discount    int    `json:"discount" validate:"gte=0,lte=100"`
	Description string `json:"description"`
}

// PaymentIntentRequest carries the price, in decimal currency units, to
// create a payment intent for.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PaymentIntentResponse carries the gateway client secret the frontend
// needs to confirm the payment.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest defines the payload for recording a completed payment.
type PaymentRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Month         string `json:"month"`
	Rent          int    `json:"rent"`
	TransactionID string `json:"transactionId"`
	Date          string `json:"date"`
}
