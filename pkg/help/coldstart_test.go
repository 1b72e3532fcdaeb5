package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestColdstartYAMLParses(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ColdstartYAML), &doc))

	assert.Contains(t, doc, "questions")
	assert.Contains(t, doc, "commands")
	assert.Contains(t, doc, "key_files")
}
