package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPools_Sizes(t *testing.T) {
	want := map[PoolName]int{
		PoolBehavioralGeneric:  8,
		PoolTechSweFaangIntern: 10,
		PoolTechSweGeneric:     5,
		PoolTechDsGeneric:      3,
		PoolTechPmGeneric:      2,
	}

	pools := Pools()
	require.Len(t, pools, len(want))
	for _, p := range pools {
		assert.Equal(t, want[p.Name()], p.Len(), "pool %s", p.Name())
	}
}

func TestPools_Tags(t *testing.T) {
	for _, p := range Pools() {
		wantTag := "Technical"
		if p.Name() == PoolBehavioralGeneric {
			wantTag = "Behavioral"
		}
		for _, q := range p.Questions() {
			assert.NotEmpty(t, q.Text)
			assert.Contains(t, q.Tags, wantTag, "pool %s: %q", p.Name(), q.Text)
		}
	}
}

func TestPools_QuestionsBelongToOnePool(t *testing.T) {
	owner := make(map[string]PoolName)
	for _, p := range Pools() {
		for _, q := range p.Questions() {
			if prev, ok := owner[q.Text]; ok {
				t.Errorf("%q is in both %s and %s", q.Text, prev, p.Name())
			}
			owner[q.Text] = p.Name()
		}
	}
}

func TestPool_QuestionsIsCopy(t *testing.T) {
	p, ok := Lookup(PoolTechDsGeneric)
	require.True(t, ok)

	qs := p.Questions()
	qs[0].Text = "changed"
	qs[0].Tags[0] = "changed"

	again := p.Questions()
	assert.NotEqual(t, "changed", again[0].Text)
	assert.Equal(t, "Technical", again[0].Tags[0])
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)
}
