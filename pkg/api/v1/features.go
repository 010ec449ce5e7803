package v1

import (
	"time"

	"github.com/goccy/go-json"
)

// ClientFeatures is the versioned envelope handed to client SDKs.
type ClientFeatures struct {
	Version  int             `json:"version"`
	Features []ClientFeature `json:"features"`
	Segments []Segment       `json:"segments,omitempty"`
	Query    *Query          `json:"query,omitempty"`
}

type ClientFeature struct {
	Name           string              `json:"name"`
	Type           *string             `json:"type,omitempty"`
	Description    string              `json:"description,omitempty"`
	CreatedAt      *time.Time          `json:"createdAt,omitempty"`
	LastSeenAt     *time.Time          `json:"lastSeenAt"` // always emitted, null when unknown
	Enabled        bool                `json:"enabled"`
	Stale          *bool               `json:"stale,omitempty"`
	ImpressionData *bool               `json:"impressionData,omitempty"`
	Project        *string             `json:"project,omitempty"`
	Strategies     []Strategy          `json:"strategies,omitempty"`
	Variants       []Variant           `json:"variants,omitempty"`
	Dependencies   []FeatureDependency `json:"dependencies,omitempty"`
}

type Strategy struct {
	Name        string            `json:"name"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	SortOrder   *int32            `json:"sortOrder,omitempty"`
	Segments    []int32           `json:"segments,omitempty"`
	Variants    []StrategyVariant `json:"variants,omitempty"`
	Constraints []Constraint      `json:"constraints,omitempty"`
}

type Constraint struct {
	ContextName     string   `json:"contextName"`
	Operator        string   `json:"operator"`
	CaseInsensitive bool     `json:"caseInsensitive,omitempty"`
	Inverted        bool     `json:"inverted,omitempty"`
	Values          []string `json:"values,omitempty"`
	Value           *string  `json:"value,omitempty"`
}

type Segment struct {
	ID          int32        `json:"id"`
	Constraints []Constraint `json:"constraints"`
}

type Payload struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type StrategyVariant struct {
	Name       string   `json:"name"`
	Weight     int32    `json:"weight"`
	Payload    *Payload `json:"payload,omitempty"`
	Stickiness *string  `json:"stickiness,omitempty"`
}

type Override struct {
	ContextName string   `json:"contextName"`
	Values      []string `json:"values"`
}

type Variant struct {
	Name       string     `json:"name"`
	Weight     int32      `json:"weight"`
	WeightType *string    `json:"weightType,omitempty"`
	Stickiness *string    `json:"stickiness,omitempty"`
	Payload    *Payload   `json:"payload,omitempty"`
	Overrides  []Override `json:"overrides,omitempty"`
}

type FeatureDependency struct {
	Feature  string   `json:"feature"`
	Enabled  *bool    `json:"enabled,omitempty"`
	Variants []string `json:"variants,omitempty"`
}

// Query echoes the filter a client used when requesting features.
type Query struct {
	Tags                     [][]string `json:"tags,omitempty"`
	Projects                 []string   `json:"projects,omitempty"`
	NamePrefix               *string    `json:"namePrefix,omitempty"`
	Environment              *string    `json:"environment,omitempty"`
	InlineSegmentConstraints *bool      `json:"inlineSegmentConstraints,omitempty"`
}

func (c *ClientFeatures) ToJSON() string {
	b, err := json.Marshal(c)
	if err != nil {
		panic("featuregen serialization failed: " + err.Error())
	}
	return string(b)
}
