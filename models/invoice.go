package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserType string

const (
	UserTypeDriver UserType = "DRIVER"
	UserTypePA     UserType = "PA"
)

// InvoiceDraft is a weekly fare submission made by a driver or PA. TotalPay is
// always recomputed from the fares and never trusted as stored.
type InvoiceDraft struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserType      UserType           `json:"userType" bson:"userType" validate:"required,oneof=DRIVER PA"`
	DriverNumber  string             `json:"driverNumber,omitempty" bson:"driverNumber,omitempty" validate:"required_if=UserType DRIVER"`
	PANumber      string             `json:"paNumber,omitempty" bson:"paNumber,omitempty" validate:"required_if=UserType PA"`
	Name          string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Mobile        string             `json:"mobile" bson:"mobile" validate:"omitempty,max=30"`
	Email         string             `json:"email" bson:"email" validate:"omitempty,email"`
	Address       string             `json:"address" bson:"address" validate:"omitempty,max=255"`
	Weeks         []Week             `json:"weeks" bson:"weeks" validate:"dive"`
	ExtraJobs     []ExtraJob         `json:"extraJobs" bson:"extraJobs" validate:"dive"`
	TotalPay      float64            `json:"totalPay" bson:"totalPay"`
	PeriodFrom    string             `json:"periodFrom" bson:"periodFrom" validate:"required,isodate"`
	PeriodTo      string             `json:"periodTo" bson:"periodTo" validate:"required,isodate"`
	Signature     string             `json:"signature" bson:"signature" validate:"required"`
	SignatureDate string             `json:"signatureDate" bson:"signatureDate" validate:"omitempty,isodate"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Identifier returns the driver or PA number depending on UserType.
func (d *InvoiceDraft) Identifier() string {
	if d.UserType == UserTypePA {
		return d.PANumber
	}
	return d.DriverNumber
}

type Week struct {
	WeekNumber int   `json:"weekNumber" bson:"weekNumber"`
	Days       []Day `json:"days" bson:"days" validate:"dive"`
}

type Day struct {
	Day    string      `json:"day" bson:"day"`
	Date   string      `json:"date" bson:"date" validate:"omitempty,isodate"`
	Routes []RouteFare `json:"routes" bson:"routes"`
}

// RouteFare is a named route with a fare of unknown quality (number, numeric
// string, empty, or garbage).
type RouteFare struct {
	Name string `json:"name" bson:"name"`
	Fare any    `json:"fare" bson:"fare"`
}

type ExtraJob struct {
	Date        string `json:"date" bson:"date" validate:"omitempty,isodate"`
	Description string `json:"description" bson:"description" validate:"max=500"`
	Fare        any    `json:"fare" bson:"fare"`
}

// DriverIdentity is the identity block printed on a generated invoice.
type DriverIdentity struct {
	Name        string `json:"name" bson:"name"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	Email       string `json:"email" bson:"email"`
	Address     string `json:"address" bson:"address"`
}

// GeneratedInvoice is the server-computed invoice for a driver and date range,
// already decomposed into regular, temporary and special-service pay.
type GeneratedInvoice struct {
	ID                   primitive.ObjectID    `json:"_id,omitempty" bson:"_id,omitempty"`
	DriverID             string                `json:"driverId,omitempty" bson:"driverId,omitempty"`
	Driver               DriverIdentity        `json:"driver" bson:"driver"`
	RegularAssignments   RegularAssignments    `json:"regularAssignments" bson:"regularAssignments"`
	TemporaryAssignments TemporaryAssignments  `json:"temporaryAssignments" bson:"temporaryAssignments"`
	SpecialServices      SpecialServiceCharges `json:"specialServices" bson:"specialServices"`
	TotalPay             any                   `json:"totalPay" bson:"totalPay"`
	OriginalDateRange    DateRange             `json:"originalDateRange" bson:"originalDateRange"`
}

type DateRange struct {
	StartDate any `json:"startDate" bson:"startDate"`
	EndDate   any `json:"endDate" bson:"endDate"`
}

type RegularAssignments struct {
	Weeks    []RegularWeek `json:"weeks" bson:"weeks"`
	TotalPay any           `json:"totalPay" bson:"totalPay"`
}

type RegularWeek struct {
	WeekNumber int          `json:"weekNumber,omitempty" bson:"weekNumber,omitempty"`
	Days       []RegularDay `json:"days" bson:"days"`
}

// RegularDay holds up to two concurrent route fares. Nil routes are empty.
type RegularDay struct {
	Day    string     `json:"day,omitempty" bson:"day,omitempty"`
	Date   any        `json:"date" bson:"date"`
	Route1 *RouteFare `json:"route1" bson:"route1"`
	Route2 *RouteFare `json:"route2" bson:"route2"`
}

type TemporaryAssignments struct {
	Days     []TemporaryDay `json:"days" bson:"days"`
	TotalPay any            `json:"totalPay" bson:"totalPay"`
}

type TemporaryDay struct {
	Day    string           `json:"day,omitempty" bson:"day,omitempty"`
	Date   any              `json:"date" bson:"date"`
	Routes []TemporaryRoute `json:"routes" bson:"routes"`
}

type TemporaryRoute struct {
	Name      string    `json:"name" bson:"name"`
	TimeOfDay TimeOfDay `json:"timeOfDay,omitempty" bson:"timeOfDay,omitempty"`
	Fare      any       `json:"fare" bson:"fare"`
}

type SpecialServiceCharges struct {
	Services []SpecialServiceLine `json:"services" bson:"services"`
	TotalPay any                  `json:"totalPay" bson:"totalPay"`
}

type SpecialServiceLine struct {
	Day              string `json:"day,omitempty" bson:"day,omitempty"`
	Date             any    `json:"date" bson:"date"`
	RouteNo          string `json:"routeNo" bson:"routeNo"`
	ServiceType      string `json:"serviceType" bson:"serviceType"`
	SpecialTime      string `json:"specialTime,omitempty" bson:"specialTime,omitempty"`
	Notes            string `json:"notes,omitempty" bson:"notes,omitempty"`
	AdditionalCharge any    `json:"additionalCharge" bson:"additionalCharge"`
}

// EditOp names a single draft fare edit.
type EditOp string

const (
	EditSetRouteFare    EditOp = "setRouteFare"
	EditAddRoute        EditOp = "addRoute"
	EditRemoveRoute     EditOp = "removeRoute"
	EditSetExtraJobFare EditOp = "setExtraJobFare"
	EditAddExtraJob     EditOp = "addExtraJob"
	EditRemoveExtraJob  EditOp = "removeExtraJob"
)

// InvoiceEdit addresses a route by (Week, Day, Route) or an extra job by Job,
// all zero-based positions in the draft.
type InvoiceEdit struct {
	Op          EditOp `json:"op" validate:"required,oneof=setRouteFare addRoute removeRoute setExtraJobFare addExtraJob removeExtraJob"`
	Week        int    `json:"week" validate:"min=0"`
	Day         int    `json:"day" validate:"min=0"`
	Route       int    `json:"route" validate:"min=0"`
	Job         int    `json:"job" validate:"min=0"`
	Name        string `json:"name,omitempty"`
	Date        string `json:"date,omitempty" validate:"omitempty,isodate"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Fare        any    `json:"fare,omitempty"`
}

type FareEditPayload struct {
	Edits []InvoiceEdit `json:"edits" validate:"required,min=1,dive"`
}
