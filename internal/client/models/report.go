// Package models defines the data transfer objects exchanged with the
// TitikTemu backend and the typed enumerations used across the client.
package models

// ReportKind distinguishes lost-item reports from found-item reports.
type ReportKind string

const (
	KindLost  ReportKind = "LOST"
	KindFound ReportKind = "FOUND"
)

// ReportStatus is the lifecycle state of a report.
type ReportStatus string

const (
	StatusActive   ReportStatus = "ACTIVE"
	StatusResolved ReportStatus = "RESOLVED"
)

// Category is the enumerated item category used for filtering.
type Category string

const (
	CategoryElectronics         Category = "ELECTRONICS"
	CategoryStationery          Category = "STATIONERY"
	CategoryPersonalAccessories Category = "PERSONAL_ACCESSORIES"
	CategoryTableware           Category = "TABLEWARE"
	CategoryDocuments           Category = "DOCUMENTS"
	CategoryCampusAttire        Category = "CAMPUS_ATTIRE"
	CategoryOther               Category = "OTHER"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryStationery,
		CategoryPersonalAccessories,
		CategoryTableware,
		CategoryDocuments,
		CategoryCampusAttire,
		CategoryOther,
	}
}

// Report is a lost-or-found item record. All fields are server-authoritative
// after creation; the client never computes id or timestamps.
type Report struct {
	ID           int64        `json:"id"`
	Kind         ReportKind   `json:"kind"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     Category     `json:"category"`
	Location     string       `json:"location"`
	IncidentDate string       `json:"incidentDate"`
	Status       ReportStatus `json:"status"`
	PhotoURL     string       `json:"photoUrl,omitempty"`

	// Reporter snapshot, denormalized by the server into the response.
	ReporterName  string `json:"reporterName"`
	ReporterRole  string `json:"reporterRole"`
	ReporterPhone string `json:"reporterPhone"`
	ReporterEmail string `json:"reporterEmail"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ReportFilter narrows the report list. Zero-valued fields are omitted
// from the query string.
type ReportFilter struct {
	Kind     ReportKind
	Category Category
	Status   ReportStatus
	Location string
	Search   string
}

// CreateReportRequest carries the client-supplied fields of a new report.
type CreateReportRequest struct {
	Kind         ReportKind `json:"kind"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     Category   `json:"category"`
	Location     string     `json:"location"`
	IncidentDate string     `json:"incidentDate"`
}

// UpdateReportRequest carries a partial report update. The backend leaves
// omitted or empty fields unchanged, so only set fields are transmitted.
type UpdateReportRequest struct {
	Title        string       `json:"title,omitempty"`
	Description  string       `json:"description,omitempty"`
	Category     Category     `json:"category,omitempty"`
	Location     string       `json:"location,omitempty"`
	IncidentDate string       `json:"incidentDate,omitempty"`
	Status       ReportStatus `json:"status,omitempty"`
}
