package entities

// Unit is the pricing unit of a catalog service.
type Unit string

const (
	UnitEach    Unit = "unit"
	UnitPerson  Unit = "person"
	UnitPackage Unit = "package"
)

// ServiceItem is an immutable, individually priced catalog service.
type ServiceItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unit_price"`
	Unit        Unit   `json:"unit"`
}

// ServiceCategory groups services for display only.
type ServiceCategory struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Services []ServiceItem `json:"services"`
}

type EventCategory struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type EventType struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Theme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// PackagedPlan is one row of the packaged-plan tier table.
type PackagedPlan struct {
	PeopleCount int   `json:"people_count"`
	FlatPrice   int64 `json:"flat_price"`
}

// IncludedService is one line of the packaged-plan checklist.
type IncludedService struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
