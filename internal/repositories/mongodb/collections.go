package mongodb

const (
	CollectionCustomers  = "customers"
	CollectionDrivers    = "drivers"
	CollectionAdmins     = "admins"
	CollectionVehicles   = "vehicles"
	CollectionRides      = "rides"
	CollectionComplaints = "complaints"
	CollectionPayments   = "payments"
)
