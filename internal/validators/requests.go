package validators

import "ridehail/internal/models"

// Request bodies, one per endpoint. Presence is checked by "required";
// enums and identifiers by the custom tags registered in init.

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"num_phone" validate:"required"`
}

type RegisterDriverRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Password      string `json:"password" validate:"required"`
	LicenseNumber string `json:"license_num" validate:"required"`
}

type RegisterAdminRequest struct {
	Username    string             `json:"username" validate:"required"`
	Password    string             `json:"password" validate:"required"`
	Permissions models.Permissions `json:"permissions" validate:"required"`
}

type RegisterVehicleRequest struct {
	DriverID           string `json:"driver_id" validate:"required,object_id"`
	RegistrationNumber string `json:"registration_num" validate:"required"`
	Model              string `json:"model" validate:"required"`
}

type BookRideRequest struct {
	CustomerID     string `json:"cust_id" validate:"required,object_id"`
	PickupLocation string `json:"pickupLocation" validate:"required"`
	Destination    string `json:"destination" validate:"required"`
}

type AcceptRideRequest struct {
	RideID   string `json:"ride_id" validate:"required,object_id"`
	DriverID string `json:"driver_id" validate:"required,object_id"`
}

type CompleteRideRequest struct {
	RideID string `json:"ride_id" validate:"required,object_id"`
	// Pointer so that an explicit 0 is distinguishable from a missing fare.
	FareAmount *float64 `json:"fare_amount" validate:"required,gte=0"`
}

type UpdateDriverStatusRequest struct {
	DriverID string `json:"driver_id" validate:"required,object_id"`
	Status   string `json:"status" validate:"driver_status"`
}

type SubmitComplaintRequest struct {
	CustomerID  string `json:"cust_id" validate:"required,object_id"`
	RideID      string `json:"ride_id" validate:"required,object_id"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"required,complaint_status"`
}

type HandleComplaintRequest struct {
	ComplaintID string  `json:"complaint_id" validate:"required,object_id"`
	Status      string  `json:"status" validate:"required,resolution_status"`
	Notes       *string `json:"notes"`
	AdminID     string  `json:"admin_id" validate:"required,object_id"`
}
