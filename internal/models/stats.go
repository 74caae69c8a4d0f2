package models

// GlobalStats is the public impact summary. Only Success donations count;
// totalTrees converts totalDonation with the configured tree-unit ratio.
type GlobalStats struct {
	TotalTrees      int `json:"totalTrees"`
	TotalDonation   int `json:"totalDonation"`
	AmountUsed      int `json:"amountUsed"`
	RemainingAmount int `json:"remainingAmount"`
}

// MonthlyTrees is one calendar-month bucket of the donation series. Month is
// formatted "2006-01" so chronological order equals lexical order.
type MonthlyTrees struct {
	Month string `json:"month"`
	Trees int    `json:"trees"`
}

// DonorTypeShare is the percentage of total Success donation amount
// attributable to one donor type.
type DonorTypeShare struct {
	DonorType  DonorType `json:"donorType"`
	Percentage float64   `json:"percentage"`
}

// TopDonor is one entry of the top-donors ranking, by summed tree-equivalent.
type TopDonor struct {
	Name  string `json:"name"`
	Trees int    `json:"trees"`
}

// DonationSummary is the authenticated aggregation view backing the tracker
// page: monthly series, donor-type distribution and top donors.
type DonationSummary struct {
	MonthlyTrees          []MonthlyTrees   `json:"monthlyTrees"`
	DonorTypeDistribution []DonorTypeShare `json:"donorTypeDistribution"`
	TopDonors             []TopDonor       `json:"topDonors"`
}
