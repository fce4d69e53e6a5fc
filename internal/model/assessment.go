package model

// Track is the rule set an applicant is evaluated under.
type Track string

// Assessment tracks.
const (
	TrackGeneral       Track = "general"
	TrackNewBusiness   Track = "new_business"
	TrackManufacturing Track = "manufacturing"
	TrackUnemployed    Track = "unemployed"
)

// LoanBounds is the amount range and rate available to a profile.
type LoanBounds struct {
	MinAmount    float64
	MaxAmount    float64
	InterestRate float64
}

// Valid reports whether the range contains at least one amount.
func (b LoanBounds) Valid() bool {
	return b.MinAmount <= b.MaxAmount
}

// Contains reports whether amount lies within the bounds.
func (b LoanBounds) Contains(amount float64) bool {
	return amount >= b.MinAmount && amount <= b.MaxAmount
}

// Scheme is an advisory benefit or government program shown alongside an assessment.
type Scheme struct {
	Name        string
	Description string
}

// LoanOffer is the computed repayment plan for approved terms.
type LoanOffer struct {
	Terms           LoanTerms
	EMI             float64
	PeriodicPayment float64
	TotalPayable    float64
	TotalInterest   float64
}

// AssessmentResult is the outcome of evaluating one applicant.
// Offer is nil until terms have been selected, and always nil for rejections.
type AssessmentResult struct {
	Offer            *LoanOffer
	Track            Track
	RejectionReasons []string
	Schemes          []Scheme
	Provisions       []string
	Bounds           LoanBounds
	Approved         bool
}
