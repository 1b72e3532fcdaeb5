// Package cooccur builds co-occurrence networks from catalog records: it counts how often
// each entity appears, keeps the most frequent ones, counts how often pairs of them share
// a title, and labels each entity by the countries of its titles.
package cooccur

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dtnitsch/cooccur-network/models"
	"github.com/dtnitsch/cooccur-network/pkg/mapreduce"
	"github.com/dtnitsch/cooccur-network/pkg/tokenize"
)

var ErrInvalidTopN = errors.New("top-n must be positive")

// Options configures one aggregation.
type Options struct {
	Kind            models.EntityKind
	TopN            int
	Mode            models.GroupMode
	Labels          models.Labels
	EntityPolicy    tokenize.Policy
	AttributePolicy tokenize.Policy
}

// OptionsFor derives aggregation options from a question preset.
func OptionsFor(q models.Question, topN int, labels models.Labels) Options {
	q = q.Resolved()
	return Options{
		Kind:            q.Kind,
		TopN:            topN,
		Mode:            q.GroupMode,
		Labels:          labels,
		EntityPolicy:    *q.EntityPolicy,
		AttributePolicy: *q.AttributePolicy,
	}
}

// CountEntities counts every name token of every non-null entity cell.
// A name repeated inside one cell is counted each time it appears.
func CountEntities(records []models.Record, policy tokenize.Policy) *mapreduce.Counter[string] {
	return mapreduce.Map(records, func(r models.Record, inc func(string)) {
		if !r.Entity.Valid {
			return
		}
		for _, name := range policy.Split(r.Entity.String) {
			inc(name)
		}
	})
}

// SelectTop returns the n most frequent entities and their membership set.
func SelectTop(counts *mapreduce.Counter[string], n int) ([]models.EntityCount, map[string]struct{}) {
	entries := mapreduce.TopN(counts, n)

	top := make([]models.EntityCount, len(entries))
	members := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		top[i] = models.EntityCount{Name: e.Key, Count: e.Count}
		members[e.Key] = struct{}{}
	}
	return top, members
}

// CountPairs counts, per record, every unordered pair of distinct top entities.
// A pair is counted at most once per record.
func CountPairs(records []models.Record, policy tokenize.Policy, top map[string]struct{}) *mapreduce.Counter[models.Pair] {
	return mapreduce.Map(records, func(r models.Record, inc func(models.Pair)) {
		if !r.Entity.Valid {
			return
		}

		var members []string
		for _, name := range tokenize.Unique(policy.Split(r.Entity.String)) {
			if _, ok := top[name]; ok {
				members = append(members, name)
			}
		}

		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				inc(models.NewPair(members[i], members[j]))
			}
		}
	})
}

// ClassifyGroups labels every entity seen in a non-null entity cell by the union of
// the countries of its titles: one country gives that country, several give
// labels.Multi, none gives labels.None. Records with a null country add no countries.
func ClassifyGroups(records []models.Record, entityPolicy, attributePolicy tokenize.Policy, labels models.Labels) map[string]string {
	countries := make(map[string]map[string]struct{})

	for _, r := range records {
		if !r.Entity.Valid {
			continue
		}

		var attrs []string
		if r.Attribute.Valid {
			attrs = attributePolicy.Split(r.Attribute.String)
		}

		for _, name := range entityPolicy.Split(r.Entity.String) {
			set, ok := countries[name]
			if !ok {
				set = make(map[string]struct{})
				countries[name] = set
			}
			for _, a := range attrs {
				set[a] = struct{}{}
			}
		}
	}

	groups := make(map[string]string, len(countries))
	for name, set := range countries {
		groups[name] = classify(set, labels)
	}
	return groups
}

func classify(set map[string]struct{}, labels models.Labels) string {
	switch len(set) {
	case 0:
		return labels.None
	case 1:
		for only := range set {
			return only
		}
	}
	return labels.Multi
}

// Aggregate runs the full pipeline over records.
// Top-N selection completes before pair counting starts.
func Aggregate(records []models.Record, opts Options) (*models.Network, error) {
	if opts.TopN <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, opts.TopN)
	}

	counts := CountEntities(records, opts.EntityPolicy)
	top, members := SelectTop(counts, opts.TopN)
	pairs := CountPairs(records, opts.EntityPolicy, members)

	network := &models.Network{
		Kind:        opts.Kind,
		Mode:        opts.Mode,
		Labels:      opts.Labels,
		RecordCount: len(records),
		Top:         top,
	}

	for _, e := range counts.Entries() {
		network.Counts = append(network.Counts, models.EntityCount{Name: e.Key, Count: e.Count})
	}
	for _, e := range pairs.Entries() {
		network.Pairs = append(network.Pairs, models.PairCount{Pair: e.Key, Count: e.Count})
	}

	if opts.Mode == models.GroupModeClassified {
		network.Groups = ClassifyGroups(records, opts.EntityPolicy, opts.AttributePolicy, opts.Labels)
	}

	return network, nil
}

// StrongestLinks returns the n pairs with the highest counts.
// Equal counts keep their first-encountered order.
func StrongestLinks(pairs []models.PairCount, n int) []models.PairCount {
	ss := make([]models.PairCount, len(pairs))
	copy(ss, pairs)

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	if n >= 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}
