package entity

// Role is the closed set of account kinds. It is fixed when the user is created.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
)

// Capability names a privileged action checked by usecases.
type Capability int

const (
	CapViewPatientData Capability = iota
	CapViewAnyDoctorAppointments
	CapManageAppointments
	CapManageUsers
	CapRecordClinicalData
	CapUploadHealthRecords
	CapViewAllPrescriptions
	CapSendNotifications
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapViewPatientData,
		CapViewAnyDoctorAppointments,
		CapManageAppointments,
		CapManageUsers,
		CapUploadHealthRecords,
		CapViewAllPrescriptions,
		CapSendNotifications,
	},
	RoleDoctor: {
		CapViewPatientData,
		CapRecordClinicalData,
		CapUploadHealthRecords,
	},
	RolePatient: {},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

// CookieName is the session cookie used for the role.
func (r Role) CookieName() string {
	switch r {
	case RoleAdmin:
		return "adminToken"
	case RoleDoctor:
		return "doctorToken"
	default:
		return "patientToken"
	}
}
