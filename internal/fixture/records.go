package fixture

// ClientJob is a gig posted by a client.
type ClientJob struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Budget          float64  `json:"budget"`
	Deadline        string   `json:"deadline"`
	Category        string   `json:"category"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
	Status          string   `json:"status"`
	PostedDate      string   `json:"postedDate"`

	SelectedWorker  string  `json:"selectedWorker,omitempty"`
	ContractAddress string  `json:"contractAddress,omitempty"`
	EscrowAmount    float64 `json:"escrowAmount,omitempty"`
	StartDate       string  `json:"startDate,omitempty"`
	CompletedDate   string  `json:"completedDate,omitempty"`
	DisputeDate     string  `json:"disputeDate,omitempty"`
	DisputeReason   string  `json:"disputeReason,omitempty"`
	Rated           bool    `json:"rated,omitempty"`
}

// Job statuses used by the sample data.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDisputed   = "disputed"
)

// GigApplication is a worker's bid on a ClientJob.
type GigApplication struct {
	Name        string   `json:"name"`
	Skills      []string `json:"skills"`
	Rating      float64  `json:"rating"`
	Bid         float64  `json:"bid"`
	GigID       int      `json:"gigId"`
	AppliedDate string   `json:"appliedDate"`
	CoverLetter string   `json:"coverLetter"`
}

type WorkerRating struct {
	Worker   string `json:"worker"`
	Rating   int    `json:"rating"`
	Client   string `json:"client"`
	GigTitle string `json:"gigTitle"`
	Date     string `json:"date"`
	Review   string `json:"review"`
}

// Payment is one escrow movement.
type Payment struct {
	ID              int     `json:"id"`
	GigTitle        string  `json:"gigTitle"`
	Worker          string  `json:"worker"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Date            string  `json:"date"`
	TransactionHash string  `json:"transactionHash"`
	Type            string  `json:"type"`
}

// Credential is a skill credential issued to a worker after a completed gig.
type Credential struct {
	ID             int    `json:"id"`
	Worker         string `json:"worker"`
	Skill          string `json:"skill"`
	Level          string `json:"level"`
	IssueDate      string `json:"issueDate"`
	CredentialHash string `json:"credentialHash"`
	GigCompleted   string `json:"gigCompleted"`
}
