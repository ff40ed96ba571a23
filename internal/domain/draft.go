package domain

import (
	"fmt"
	"time"
)

// Field names of the step-1 portion of an order draft.
const (
	FieldPickupAddress      = "pickupAddress"
	FieldEstimatedDate      = "estimatedDate"
	FieldFirstName          = "firstName"
	FieldLastName           = "lastName"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldDestinationAddress = "destinationAddress"
	FieldDepartment         = "department"
	FieldMunicipality       = "municipality"
	FieldReferencePoint     = "referencePoint"
	FieldInformation        = "information"
)

// DraftFields lists the step-1 fields in form order.
var DraftFields = []string{
	FieldPickupAddress,
	FieldEstimatedDate,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldDestinationAddress,
	FieldDepartment,
	FieldMunicipality,
	FieldReferencePoint,
	FieldInformation,
}

var fieldLabels = map[string]string{
	FieldPickupAddress:      "Dirección de recolección",
	FieldEstimatedDate:      "Fecha programada",
	FieldFirstName:          "Nombres",
	FieldLastName:           "Apellidos",
	FieldEmail:              "Correo electrónico",
	FieldPhone:              "Teléfono",
	FieldDestinationAddress: "Dirección del destinatario",
	FieldDepartment:         "Departamento",
	FieldMunicipality:       "Municipio",
	FieldReferencePoint:     "Punto de referencia",
	FieldInformation:        "Indicaciones",
}

// FieldLabel returns the human label of a draft field, or the name itself.
func FieldLabel(name string) string {
	if l, ok := fieldLabels[name]; ok {
		return l
	}
	return name
}

// OrderDraft holds the step-1 scalar fields of an order being assembled.
// Line items are kept by the wizard alongside it.
type OrderDraft struct {
	PickupAddress      string     `yaml:"pickupAddress"`
	EstimatedDate      *time.Time `yaml:"estimatedDate"`
	FirstName          string     `yaml:"firstName"`
	LastName           string     `yaml:"lastName"`
	Email              string     `yaml:"email"`
	Phone              string     `yaml:"phone"`
	DestinationAddress string     `yaml:"destinationAddress"`
	Department         string     `yaml:"department"`
	Municipality       string     `yaml:"municipality"`
	ReferencePoint     string     `yaml:"referencePoint"`
	Information        string     `yaml:"information"`
}

// Value returns a field for validation: strings for text fields,
// *time.Time for the scheduled date.
func (d OrderDraft) Value(name string) any {
	switch name {
	case FieldPickupAddress:
		return d.PickupAddress
	case FieldEstimatedDate:
		return d.EstimatedDate
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldDestinationAddress:
		return d.DestinationAddress
	case FieldDepartment:
		return d.Department
	case FieldMunicipality:
		return d.Municipality
	case FieldReferencePoint:
		return d.ReferencePoint
	case FieldInformation:
		return d.Information
	}
	return nil
}

// SetText assigns a text field by name. The scheduled date is set through
// its own field since it is not text.
func (d *OrderDraft) SetText(name, value string) error {
	switch name {
	case FieldPickupAddress:
		d.PickupAddress = value
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldDestinationAddress:
		d.DestinationAddress = value
	case FieldDepartment:
		d.Department = value
	case FieldMunicipality:
		d.Municipality = value
	case FieldReferencePoint:
		d.ReferencePoint = value
	case FieldInformation:
		d.Information = value
	default:
		return fmt.Errorf("order draft: %q is not a text field", name)
	}
	return nil
}

// CreateOrderRequest is the payload sent to the order-creation endpoint.
type CreateOrderRequest struct {
	PickupAddress      string     `json:"pickupAddress"`
	EstimatedDate      string     `json:"estimatedDate"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	DestinationAddress string     `json:"destinationAddress"`
	Department         string     `json:"department"`
	Municipality       string     `json:"municipality"`
	ReferencePoint     string     `json:"referencePoint"`
	Information        string     `json:"information"`
	UserID             string     `json:"idUserCreate"`
	Products           []LineItem `json:"products"`
}
