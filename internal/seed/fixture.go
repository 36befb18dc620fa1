package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML document accepted by the seed command. Materials are
// nested under their owning industry; everything else refers to industries
// and materials by name.
type Fixture struct {
	Industries         []IndustryFixture    `yaml:"industries"`
	Opportunities      []OpportunityFixture `yaml:"opportunities"`
	Transactions       []TransactionFixture `yaml:"transactions"`
	CirculationMetrics []MetricFixture      `yaml:"circulation_metrics"`
}

type IndustryFixture struct {
	Name         string            `yaml:"name"`
	Sector       string            `yaml:"sector"`
	Location     string            `yaml:"location"`
	Description  string            `yaml:"description"`
	AnnualOutput float64           `yaml:"annual_output"`
	Materials    []MaterialFixture `yaml:"materials"`
}

type MaterialFixture struct {
	Name                   string  `yaml:"name"`
	MaterialType           string  `yaml:"material_type"`
	Quantity               float64 `yaml:"quantity"`
	Unit                   string  `yaml:"unit"`
	ChemicalComposition    string  `yaml:"chemical_composition"`
	MechanicalTolerance    string  `yaml:"mechanical_tolerance"`
	ThermodynamicStability string  `yaml:"thermodynamic_stability"`
	RegulatoryStatus       string  `yaml:"regulatory_status"`
	AvailabilityStatus     string  `yaml:"availability_status"`
	Description            string  `yaml:"description"`
}

type OpportunityFixture struct {
	Material                     string  `yaml:"material"`
	TargetIndustry               string  `yaml:"target_industry"`
	CompatibilityScore           float64 `yaml:"compatibility_score"`
	FeasibilityIndex             float64 `yaml:"feasibility_index"`
	PreprocessingRequired        string  `yaml:"preprocessing_required"`
	EstimatedCostSavings         float64 `yaml:"estimated_cost_savings"`
	EnvironmentalImpactReduction float64 `yaml:"environmental_impact_reduction"`
	ReliabilityRating            float64 `yaml:"reliability_rating"`
	Status                       string  `yaml:"status"`
	Notes                        string  `yaml:"notes"`
}

type TransactionFixture struct {
	Material             string    `yaml:"material"`
	SourceIndustry       string    `yaml:"source_industry"`
	TargetIndustry       string    `yaml:"target_industry"`
	QuantityTransferred  float64   `yaml:"quantity_transferred"`
	Unit                 string    `yaml:"unit"`
	TransactionDate      time.Time `yaml:"transaction_date"`
	Status               string    `yaml:"status"`
	CostSavings          float64   `yaml:"cost_savings"`
	EnvironmentalBenefit float64   `yaml:"environmental_benefit"`
}

type MetricFixture struct {
	Industry           string    `yaml:"industry"`
	MaterialName       string    `yaml:"material_name"`
	DaysToReabsorption float64   `yaml:"days_to_reabsorption"`
	CirculationCycles  int64     `yaml:"circulation_cycles"`
	ReabsorptionRate   float64   `yaml:"reabsorption_rate"`
	MeasuredAt         time.Time `yaml:"measured_at"`
}

func LoadFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode rejects unknown keys so a misspelled field fails loudly.
func Decode(r io.Reader) (*Fixture, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fx Fixture
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fx, nil
}
