package fixture

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// Canonical collection keys.
const (
	KeyClientJobs        = "clientJobs"
	KeyGigApplications   = "gigApplications"
	KeyWorkerRatings     = "workerRatings"
	KeyPaymentHistory    = "paymentHistory"
	KeyIssuedCredentials = "issuedCredentials"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Collection is one canned record sequence and the key it is stored under.
type Collection struct {
	Key     string
	Records any
}

// Encode returns the wire form of the records.
func (c Collection) Encode() ([]byte, error) {
	return codec.Marshal(c.Records)
}

// Len reports how many records the collection holds. Records that are not a
// slice count as zero.
func (c Collection) Len() int {
	v := reflect.ValueOf(c.Records)
	if v.Kind() != reflect.Slice {
		return 0
	}
	return v.Len()
}

// Keys returns the canonical keys in seeding order.
func Keys() []string {
	return []string{
		KeyClientJobs,
		KeyGigApplications,
		KeyWorkerRatings,
		KeyPaymentHistory,
		KeyIssuedCredentials,
	}
}

// IsKey reports whether key names one of the canonical collections.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Catalog returns the canned collections in seeding order. Every call builds
// fresh slices, so callers may modify the result.
func Catalog() []Collection {
	return []Collection{
		{Key: KeyClientJobs, Records: sampleClientJobs()},
		{Key: KeyGigApplications, Records: sampleGigApplications()},
		{Key: KeyWorkerRatings, Records: sampleWorkerRatings()},
		{Key: KeyPaymentHistory, Records: samplePayments()},
		{Key: KeyIssuedCredentials, Records: sampleCredentials()},
	}
}

func sampleClientJobs() []ClientJob {
	return []ClientJob{
		{
			ID:              1,
			Title:           "E-commerce Website Development",
			Description:     "Build a responsive online store with product catalog, cart and crypto checkout.",
			Budget:          2500,
			Deadline:        "2024-03-15",
			Category:        "Web Development",
			Skills:          []string{"React", "Node.js", "MongoDB", "Stripe"},
			ExperienceLevel: "intermediate",
			Status:          StatusInProgress,
			PostedDate:      "2024-01-10",
			SelectedWorker:  "Alex Chen",
			ContractAddress: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			EscrowAmount:    2500,
			StartDate:       "2024-01-18",
		},
		{
			ID:              2,
			Title:           "Mobile App UI/UX Design",
			Description:     "Design screens and a clickable prototype for a fitness tracking app.",
			Budget:          1200,
			Deadline:        "2024-02-28",
			Category:        "Design",
			Skills:          []string{"Figma", "UI Design", "Prototyping"},
			ExperienceLevel: "expert",
			Status:          StatusOpen,
			PostedDate:      "2024-01-20",
		},
		{
			ID:              3,
			Title:           "Smart Contract Audit",
			Description:     "Review an ERC-20 token and staking contract for vulnerabilities.",
			Budget:          3000,
			Deadline:        "2024-01-31",
			Category:        "Blockchain",
			Skills:          []string{"Solidity", "Security", "Hardhat"},
			ExperienceLevel: "expert",
			Status:          StatusCompleted,
			PostedDate:      "2023-12-05",
			SelectedWorker:  "Maria Garcia",
			ContractAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			EscrowAmount:    3000,
			StartDate:       "2023-12-12",
			CompletedDate:   "2024-01-25",
			Rated:           true,
		},
		{
			ID:              4,
			Title:           "Content Writing for Tech Blog",
			Description:     "Ten long-form articles on cloud infrastructure and DevOps practices.",
			Budget:          800,
			Deadline:        "2024-02-10",
			Category:        "Writing",
			Skills:          []string{"Technical Writing", "SEO", "DevOps"},
			ExperienceLevel: "entry",
			Status:          StatusDisputed,
			PostedDate:      "2023-12-20",
			SelectedWorker:  "James Wilson",
			ContractAddress: "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
			EscrowAmount:    800,
			StartDate:       "2024-01-02",
			DisputeDate:     "2024-01-28",
			DisputeReason:   "Delivered articles did not meet the agreed word count.",
		},
		{
			ID:              5,
			Title:           "Data Analytics Dashboard",
			Description:     "Python dashboard visualising sales KPIs from a PostgreSQL warehouse.",
			Budget:          1800,
			Deadline:        "2024-03-30",
			Category:        "Data Science",
			Skills:          []string{"Python", "Pandas", "Plotly", "SQL"},
			ExperienceLevel: "intermediate",
			Status:          StatusOpen,
			PostedDate:      "2024-01-25",
		},
	}
}

func sampleGigApplications() []GigApplication {
	return []GigApplication{
		{
			Name:        "Sarah Johnson",
			Skills:      []string{"Figma", "Sketch", "UI Design"},
			Rating:      4.8,
			Bid:         1100,
			GigID:       2,
			AppliedDate: "2024-01-21",
			CoverLetter: "I have designed six fitness apps and can deliver a prototype within two weeks.",
		},
		{
			Name:        "David Kim",
			Skills:      []string{"Adobe XD", "Prototyping", "User Research"},
			Rating:      4.6,
			Bid:         1250,
			GigID:       2,
			AppliedDate: "2024-01-22",
			CoverLetter: "My process starts with user interviews so the flows match how people train.",
		},
		{
			Name:        "Priya Patel",
			Skills:      []string{"Python", "Pandas", "Tableau"},
			Rating:      4.9,
			Bid:         1700,
			GigID:       5,
			AppliedDate: "2024-01-26",
			CoverLetter: "I build KPI dashboards for retail teams and can connect directly to your warehouse.",
		},
		{
			Name:        "Lucas Martin",
			Skills:      []string{"Python", "Plotly", "SQL"},
			Rating:      4.4,
			Bid:         1500,
			GigID:       5,
			AppliedDate: "2024-01-27",
			CoverLetter: "Plotly Dash specialist with a portfolio of interactive analytics tools.",
		},
	}
}

func sampleWorkerRatings() []WorkerRating {
	return []WorkerRating{
		{
			Worker:   "Maria Garcia",
			Rating:   5,
			Client:   "TechCorp Inc.",
			GigTitle: "Smart Contract Audit",
			Date:     "2024-01-26",
			Review:   "Thorough audit, found two critical issues and explained every fix.",
		},
		{
			Worker:   "Alex Chen",
			Rating:   4,
			Client:   "ShopLocal",
			GigTitle: "Landing Page Redesign",
			Date:     "2023-11-14",
			Review:   "Good communication, delivered a day late.",
		},
		{
			Worker:   "Emily Brown",
			Rating:   5,
			Client:   "GreenLeaf Media",
			GigTitle: "Brand Identity Package",
			Date:     "2023-10-30",
			Review:   "Creative and fast. Will hire again.",
		},
	}
}

func samplePayments() []Payment {
	return []Payment{
		{
			ID:              1,
			GigTitle:        "Smart Contract Audit",
			Worker:          "Maria Garcia",
			Amount:          3000,
			Status:          "completed",
			Date:            "2024-01-25",
			TransactionHash: "0x9f8e7d6c5b4a39281706f5e4d3c2b1a0f9e8d7c6b5a4938271605f4e3d2c1b0a",
			Type:            "escrow_release",
		},
		{
			ID:              2,
			GigTitle:        "E-commerce Website Development",
			Worker:          "Alex Chen",
			Amount:          2500,
			Status:          "in_escrow",
			Date:            "2024-01-18",
			TransactionHash: "0x1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f809",
			Type:            "escrow_deposit",
		},
		{
			ID:              3,
			GigTitle:        "Content Writing for Tech Blog",
			Worker:          "James Wilson",
			Amount:          800,
			Status:          "disputed",
			Date:            "2024-01-02",
			TransactionHash: "0x5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d",
			Type:            "escrow_deposit",
		},
		{
			ID:              4,
			GigTitle:        "Landing Page Redesign",
			Worker:          "Alex Chen",
			Amount:          950,
			Status:          "completed",
			Date:            "2023-11-14",
			TransactionHash: "0xc4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3",
			Type:            "escrow_release",
		},
	}
}

func sampleCredentials() []Credential {
	return []Credential{
		{
			ID:             1,
			Worker:         "Maria Garcia",
			Skill:          "Solidity",
			Level:          "Expert",
			IssueDate:      "2024-01-26",
			CredentialHash: "0xa1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90",
			GigCompleted:   "Smart Contract Audit",
		},
		{
			ID:             2,
			Worker:         "Alex Chen",
			Skill:          "React",
			Level:          "Intermediate",
			IssueDate:      "2023-11-15",
			CredentialHash: "0xb2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90a1",
			GigCompleted:   "Landing Page Redesign",
		},
		{
			ID:             3,
			Worker:         "Emily Brown",
			Skill:          "Brand Design",
			Level:          "Advanced",
			IssueDate:      "2023-10-31",
			CredentialHash: "0xc3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2",
			GigCompleted:   "Brand Identity Package",
		},
	}
}
