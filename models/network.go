package models

// EntityCount is an entity name and the number of titles it appears in.
type EntityCount struct {
	Name  string
	Count int
}

// Pair is an unordered pair of entities stored in canonical order (Source < Target).
type Pair struct {
	Source string
	Target string
}

// NewPair orders a and b lexicographically.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{Source: a, Target: b}
}

// PairCount is a link between two top entities and the titles they share.
type PairCount struct {
	Pair
	Count int
}

// Labels holds the sentinel and placeholder values used in the Group column.
type Labels struct {
	Multi    string `yaml:"multi"`    // entity seen with more than one country
	None     string `yaml:"none"`     // entity never seen with a country
	Constant string `yaml:"constant"` // placeholder for constant group mode
}

// DefaultLabels matches the labels of the published visualizations.
func DefaultLabels() Labels {
	return Labels{
		Multi:    "Internacional",
		None:     "S/P",
		Constant: "0",
	}
}

// Network is the result of one aggregation run.
type Network struct {
	Kind        EntityKind
	Mode        GroupMode
	Labels      Labels
	RecordCount int

	// Counts holds every distinct entity in first-seen order.
	Counts []EntityCount
	// Top is the ranked selection, highest count first.
	Top []EntityCount
	// Pairs holds links between top entities in first-encountered order.
	Pairs []PairCount
	// Groups maps every seen entity to its label. Nil in constant mode.
	Groups map[string]string
}

// GroupOf returns the Group column value for an entity.
func (n *Network) GroupOf(name string) string {
	if n.Mode == GroupModeConstant {
		return n.Labels.Constant
	}
	if g, ok := n.Groups[name]; ok {
		return g
	}
	return n.Labels.None
}
