package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicySplit(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		raw    string
		want   []string
	}{
		{
			name:   "cast list split verbatim",
			policy: Policy{Delimiter: ", "},
			raw:    "Ama Qamata, Khosi Ngema, Gail Mabalane",
			want:   []string{"Ama Qamata", "Khosi Ngema", "Gail Mabalane"},
		},
		{
			name:   "cast list keeps empty and untrimmed tokens",
			policy: Policy{Delimiter: ", "},
			raw:    "A, , B,C",
			want:   []string{"A", "", "B,C"},
		},
		{
			name:   "director list trimmed and empties dropped",
			policy: Policy{Delimiter: ",", Trim: true, DropEmpty: true},
			raw:    " Rajiv Chilaka,  , Suhas Kadav ,",
			want:   []string{"Rajiv Chilaka", "Suhas Kadav"},
		},
		{
			name:   "empty delimiter falls back to comma",
			policy: Policy{Trim: true},
			raw:    "United States, India",
			want:   []string{"United States", "India"},
		},
		{
			name:   "single value",
			policy: Policy{Delimiter: ",", Trim: true, DropEmpty: true},
			raw:    "Brazil",
			want:   []string{"Brazil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Split(tt.raw))
		})
	}
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, Unique([]string{"A", "B", "A", "C", "B"}))
	assert.Empty(t, Unique(nil))
}
