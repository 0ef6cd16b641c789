package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Topic
	}{
		{name: "legacy string form", in: `"Pointers"`, want: Topic{Text: "Pointers", Completed: false}},
		{name: "object form", in: `{"text":"Slices","completed":true}`, want: Topic{Text: "Slices", Completed: true}},
		{name: "object form incomplete", in: `{"text":"Maps"}`, want: Topic{Text: "Maps", Completed: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var topic Topic
			require.NoError(t, json.Unmarshal([]byte(tt.in), &topic))
			assert.Equal(t, tt.want, topic)
		})
	}
}

func TestTopicUnmarshalJSONMixedDocument(t *testing.T) {
	// One document may hold both eras of topic encoding.
	blob := `{
		"subject": "Operating Systems",
		"modules": [
			{"title": "Processes", "topics": ["Scheduling", {"text": "Deadlock", "completed": true}], "estimated_hours": 4, "suggested_days": "Day 1-2"}
		]
	}`

	var doc PlanDocument
	require.NoError(t, json.Unmarshal([]byte(blob), &doc))
	require.Len(t, doc.Modules, 1)
	require.Len(t, doc.Modules[0].Topics, 2)
	assert.Equal(t, Topic{Text: "Scheduling", Completed: false}, doc.Modules[0].Topics[0])
	assert.Equal(t, Topic{Text: "Deadlock", Completed: true}, doc.Modules[0].Topics[1])
}

func TestPlanDocumentProgress(t *testing.T) {
	tests := []struct {
		name string
		doc  PlanDocument
		want int
	}{
		{name: "no modules", doc: PlanDocument{Subject: "Empty"}, want: 0},
		{
			name: "no topics",
			doc:  PlanDocument{Subject: "S", Modules: []PlanModule{{Title: "M"}}},
			want: 0,
		},
		{
			name: "half done",
			doc: PlanDocument{Subject: "S", Modules: []PlanModule{
				{Title: "M", Topics: []Topic{{Text: "a", Completed: true}, {Text: "b"}}},
			}},
			want: 50,
		},
		{
			name: "rounded across modules",
			doc: PlanDocument{Subject: "S", Modules: []PlanModule{
				{Title: "M1", Topics: []Topic{{Text: "a", Completed: true}, {Text: "b"}}},
				{Title: "M2", Topics: []Topic{{Text: "c"}}},
			}},
			want: 33,
		},
		{
			name: "all done",
			doc: PlanDocument{Subject: "S", Modules: []PlanModule{
				{Title: "M", Topics: []Topic{{Text: "a", Completed: true}}},
			}},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.Progress())
		})
	}
}

func TestPlanDocumentToggleTopic(t *testing.T) {
	doc := PlanDocument{
		Subject: "Networks",
		Modules: []PlanModule{
			{Title: "Link layer", Topics: []Topic{{Text: "Ethernet"}, {Text: "ARP"}}},
		},
	}

	require.NoError(t, doc.ToggleTopic(0, 1))
	assert.True(t, doc.Modules[0].Topics[1].Completed)

	require.NoError(t, doc.ToggleTopic(0, 1))
	assert.False(t, doc.Modules[0].Topics[1].Completed)

	assert.Error(t, doc.ToggleTopic(1, 0))
	assert.Error(t, doc.ToggleTopic(0, 2))
	assert.Error(t, doc.ToggleTopic(-1, 0))
	assert.Error(t, doc.ToggleTopic(0, -1))
}

func TestPlanDocumentValidate(t *testing.T) {
	valid := PlanDocument{Subject: "Calculus", Modules: []PlanModule{{Title: "Limits"}}}
	assert.NoError(t, valid.Validate())

	noSubject := PlanDocument{Modules: []PlanModule{{Title: "Limits"}}}
	assert.Error(t, noSubject.Validate())

	untitledModule := PlanDocument{Subject: "Calculus", Modules: []PlanModule{{}}}
	assert.Error(t, untitledModule.Validate())
}
