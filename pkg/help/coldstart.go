package help

const ColdstartYAML = `# cooccur Quick Start

questions:
  q1: "Actors who appear together, grouped by country"
  q2: "Directors who work together, grouped by country"

group_modes:
  classified: "Single country, Internacional (several) or S/P (none)"
  constant: "Every point in group 0"

commands:
  actor_network: |
    cooccur network --question q1

  director_network: |
    cooccur network --kind director --input datasets/netflix_titles.csv

  flat_actor_network: |
    cooccur network --kind actor --group-mode constant

  both_questions: |
    cooccur all --top 100

  list_runs: |
    cooccur runs --limit 10

  run_details: |
    cooccur run 3

config:
  file: "cooccur.yaml (or --config path)"
  env:
    - "COOCCUR_INPUT"
    - "COOCCUR_RESULTS_DIR"
    - "COOCCUR_TOP_N"
    - "COOCCUR_DB"
  precedence: "defaults < yaml < .env/environment < flags"

key_files:
  - "results/q1/links.csv (Source,Target,Movies_Count)"
  - "results/q1/points.csv (Actor,Group,Movies_Count)"
  - "results/q2/points.csv (Director,Group,Movies_Count)"
  - "results/{question}/summary.yaml (run metadata and previews)"
  - "results/cooccur.db (run history)"

history:
  - "Every successful run is recorded in SQLite unless --no-history"
  - "Runs over identical input and options are reported as repeats"
`
