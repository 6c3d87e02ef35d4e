package models

// FicheStatus is the lifecycle state of a weekly fiche.
//
// Ordering: BROUILLON -> EN_SIGNATURE -> VALIDE_CHEF ->
// VALIDE_CONDUCTEUR | AUTO_VALIDE -> ENVOYE_RH.
type FicheStatus string

const (
	StatusBrouillon        FicheStatus = "BROUILLON"
	StatusEnSignature      FicheStatus = "EN_SIGNATURE"
	StatusValideChef       FicheStatus = "VALIDE_CHEF"
	StatusValideConducteur FicheStatus = "VALIDE_CONDUCTEUR"
	StatusAutoValide       FicheStatus = "AUTO_VALIDE"
	StatusEnvoyeRH         FicheStatus = "ENVOYE_RH"
)

// IsValid checks if the FicheStatus is valid
func (s FicheStatus) IsValid() bool {
	switch s {
	case StatusBrouillon, StatusEnSignature, StatusValideChef,
		StatusValideConducteur, StatusAutoValide, StatusEnvoyeRH:
		return true
	}
	return false
}

// IsBlocking reports whether a fiche in this status freezes day edits for
// its (employee, week) pair. AUTO_VALIDE counts: it is supervisor approval
// by timeout rather than by action.
func (s FicheStatus) IsBlocking() bool {
	switch s {
	case StatusValideChef, StatusValideConducteur, StatusAutoValide, StatusEnvoyeRH:
		return true
	}
	return false
}

// IsEarly reports whether the fiche is still in a non-committed status,
// i.e. eligible for deletion when a crew is dissolved.
func (s FicheStatus) IsEarly() bool {
	return s == StatusBrouillon || s == StatusValideChef
}

// EmployeeRole is the workforce role an employee holds.
type EmployeeRole string

const (
	RoleOuvrier    EmployeeRole = "OUVRIER"
	RoleChef       EmployeeRole = "CHEF"       // chef d'équipe (crew lead)
	RoleConducteur EmployeeRole = "CONDUCTEUR" // conducteur de travaux (site supervisor)
	RoleRH         EmployeeRole = "RH"
	RoleAdmin      EmployeeRole = "ADMIN"
)

// IsValid checks if the EmployeeRole is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleOuvrier, RoleChef, RoleConducteur, RoleRH, RoleAdmin:
		return true
	}
	return false
}

// TrajetCode classifies an employee's daily commute for payroll zones.
// TrajetACompleter is the seeding sentinel: HR still has to classify it.
type TrajetCode string

const (
	TrajetACompleter TrajetCode = "A_COMPLETER"
	TrajetZone1      TrajetCode = "T1"
	TrajetZone2      TrajetCode = "T2"
	TrajetZone3      TrajetCode = "T3"
	TrajetZone4      TrajetCode = "T4"
	TrajetZone5      TrajetCode = "T5"
	TrajetGrandDepl  TrajetCode = "GD" // grand déplacement
)

// IsValid checks if the TrajetCode is valid
func (c TrajetCode) IsValid() bool {
	switch c {
	case TrajetACompleter, TrajetZone1, TrajetZone2, TrajetZone3,
		TrajetZone4, TrajetZone5, TrajetGrandDepl:
		return true
	}
	return false
}

// AbsenceType classifies a non-worked day.
type AbsenceType string

const (
	AbsenceCongesPayes  AbsenceType = "CP"
	AbsenceRTT          AbsenceType = "RTT"
	AbsenceMaladie      AbsenceType = "AM"
	AbsenceAccident     AbsenceType = "AT"
	AbsenceInjustifiee  AbsenceType = "ABS_INJ"
	AbsenceSansSolde    AbsenceType = "CSS"
	AbsenceIntemperies  AbsenceType = "INT"
	AbsenceFormation    AbsenceType = "FORM"
)

// IsValid checks if the AbsenceType is valid
func (a AbsenceType) IsValid() bool {
	switch a {
	case AbsenceCongesPayes, AbsenceRTT, AbsenceMaladie, AbsenceAccident,
		AbsenceInjustifiee, AbsenceSansSolde, AbsenceIntemperies, AbsenceFormation:
		return true
	}
	return false
}

// SignatureRole is the capacity in which a fiche was signed.
type SignatureRole string

const (
	SignatureRoleChef       SignatureRole = "CHEF"
	SignatureRoleConducteur SignatureRole = "CONDUCTEUR"
	SignatureRoleSalarie    SignatureRole = "SALARIE"
)

// IsValid checks if the SignatureRole is valid
func (r SignatureRole) IsValid() bool {
	switch r {
	case SignatureRoleChef, SignatureRoleConducteur, SignatureRoleSalarie:
		return true
	}
	return false
}

// CongeStatus is the lifecycle state of a leave request.
//
// EN_ATTENTE -> VALIDEE_CONDUCTEUR -> VALIDEE_RH, or -> REFUSEE from
// either prior state.
type CongeStatus string

const (
	CongeEnAttente         CongeStatus = "EN_ATTENTE"
	CongeValideeConducteur CongeStatus = "VALIDEE_CONDUCTEUR"
	CongeValideeRH         CongeStatus = "VALIDEE_RH"
	CongeRefusee           CongeStatus = "REFUSEE"
)

// IsValid checks if the CongeStatus is valid
func (s CongeStatus) IsValid() bool {
	switch s {
	case CongeEnAttente, CongeValideeConducteur, CongeValideeRH, CongeRefusee:
		return true
	}
	return false
}

// IsTerminal reports whether the leave request can still move.
func (s CongeStatus) IsTerminal() bool {
	return s == CongeValideeRH || s == CongeRefusee
}

// CongeType classifies a leave request.
type CongeType string

const (
	CongeTypeCP        CongeType = "CP"
	CongeTypeRTT       CongeType = "RTT"
	CongeTypeSansSolde CongeType = "SANS_SOLDE"
	CongeTypeMaladie   CongeType = "MALADIE"
)

// IsValid checks if the CongeType is valid
func (t CongeType) IsValid() bool {
	switch t {
	case CongeTypeCP, CongeTypeRTT, CongeTypeSansSolde, CongeTypeMaladie:
		return true
	}
	return false
}
