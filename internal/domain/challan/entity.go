package challan

import "time"

// ChallanEntry is one line of a delivery challan: boxes received from one
// thread company.
type ChallanEntry struct {
	CompanyID string  `json:"companyId"`
	BoxCount  float64 `json:"boxCount"`
}

// ThreadChallan is a delivery note for thread boxes. MainBrandID is derived
// from the first entry's company (its parent brand, or the company itself
// when it has none) and a challan number is unique within a main brand and
// calendar month.
type ThreadChallan struct {
	ID          string
	ChallanNo   int
	Date        time.Time
	MainBrandID string
	Entries     []ChallanEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
