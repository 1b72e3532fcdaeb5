package manifest

// SummaryManifest is written as summary.yaml next to links.csv and points.csv.
// It records how the tables were produced so a run can be traced without
// re-reading the dataset.
type SummaryManifest struct {
	RunID            string        `yaml:"run_id"`
	GeneratedAt      string        `yaml:"generated_at"`
	Question         string        `yaml:"question"`
	Kind             string        `yaml:"kind"`
	Input            string        `yaml:"input"`
	InputSHA256      string        `yaml:"input_sha256"`
	TopN             int           `yaml:"top_n"`
	GroupMode        string        `yaml:"group_mode"`
	Records          int           `yaml:"records"`
	DistinctEntities int           `yaml:"distinct_entities"`
	Selected         int           `yaml:"selected"`
	Pairs            int           `yaml:"pairs"`
	TopEntities      []string      `yaml:"top_entities"`
	StrongestLinks   []LinkSummary `yaml:"strongest_links"`
	Files            FileSummary   `yaml:"files"`
}

// LinkSummary is one of the strongest links of the run.
type LinkSummary struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Count  int    `yaml:"count"`
}

type FileSummary struct {
	Links       string `yaml:"links"`
	LinksBytes  int64  `yaml:"links_bytes"`
	Points      string `yaml:"points"`
	PointsBytes int64  `yaml:"points_bytes"`
}
