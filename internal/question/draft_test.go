package question

import "testing"

// TestNewDraftStartsWithOneBlankAnswer verifies the initial draft shape.
func TestNewDraftStartsWithOneBlankAnswer(t *testing.T) {
	draft := NewDraft()
	if draft.Prompt != "" {
		t.Fatalf("expected empty prompt, got %q", draft.Prompt)
	}
	if len(draft.Answers) != 1 || draft.Answers[0] != "" {
		t.Fatalf("expected single blank answer, got %+v", draft.Answers)
	}
}

// TestDraftSetAnswerReplacesOnlyTarget verifies edits leave sibling answers alone.
func TestDraftSetAnswerReplacesOnlyTarget(t *testing.T) {
	draft := Draft{Prompt: "q", Answers: []string{"a", "b", "c"}}
	edited := draft.SetAnswer(1, "B")
	if edited.Answers[0] != "a" || edited.Answers[1] != "B" || edited.Answers[2] != "c" {
		t.Fatalf("unexpected answers after edit: %+v", edited.Answers)
	}
	if draft.Answers[1] != "b" {
		t.Fatalf("edit mutated the original draft: %+v", draft.Answers)
	}
}

// TestDraftSetAnswerOutOfRangeIsNoOp verifies invalid indices leave the draft unchanged.
func TestDraftSetAnswerOutOfRangeIsNoOp(t *testing.T) {
	draft := Draft{Answers: []string{"a"}}
	for _, index := range []int{-1, 1, 99} {
		edited := draft.SetAnswer(index, "x")
		if len(edited.Answers) != 1 || edited.Answers[0] != "a" {
			t.Fatalf("index %d changed the draft: %+v", index, edited.Answers)
		}
	}
}

// TestDraftAddAnswerAppendsBlankField verifies add grows the list by one blank entry.
func TestDraftAddAnswerAppendsBlankField(t *testing.T) {
	draft := Draft{Answers: []string{"a"}}
	grown := draft.AddAnswer()
	if len(grown.Answers) != 2 || grown.Answers[1] != "" {
		t.Fatalf("expected appended blank answer, got %+v", grown.Answers)
	}
	if len(draft.Answers) != 1 {
		t.Fatalf("add mutated the original draft: %+v", draft.Answers)
	}
}

// TestDraftRemoveAnswerKeepsOrder verifies removal drops only the target index.
func TestDraftRemoveAnswerKeepsOrder(t *testing.T) {
	draft := Draft{Answers: []string{"a", "b", "c"}}
	shrunk := draft.RemoveAnswer(1)
	if len(shrunk.Answers) != 2 || shrunk.Answers[0] != "a" || shrunk.Answers[1] != "c" {
		t.Fatalf("unexpected answers after removal: %+v", shrunk.Answers)
	}
}

// TestDraftRemoveAnswerNeverEmpties verifies no removal sequence drops the last field.
func TestDraftRemoveAnswerNeverEmpties(t *testing.T) {
	draft := Draft{Answers: []string{"a", "b", "c"}}
	for i := 0; i < 10; i++ {
		draft = draft.RemoveAnswer(0)
		if len(draft.Answers) < 1 {
			t.Fatalf("answer list emptied after %d removals", i+1)
		}
	}
	if len(draft.Answers) != 1 {
		t.Fatalf("expected exactly one surviving answer, got %+v", draft.Answers)
	}
}

// TestDraftRemoveAnswerOutOfRangeIsNoOp verifies invalid removal indices are ignored.
func TestDraftRemoveAnswerOutOfRangeIsNoOp(t *testing.T) {
	draft := Draft{Answers: []string{"a", "b"}}
	for _, index := range []int{-1, 2, 50} {
		edited := draft.RemoveAnswer(index)
		if len(edited.Answers) != 2 {
			t.Fatalf("index %d changed the draft: %+v", index, edited.Answers)
		}
	}
}

// TestDraftAddRemoveSequencesKeepInvariant verifies mixed sequences keep at least one answer.
func TestDraftAddRemoveSequencesKeepInvariant(t *testing.T) {
	type step struct {
		add    bool
		remove int
	}
	cases := []struct {
		name  string
		steps []step
	}{
		{name: "remove first repeatedly", steps: []step{{remove: 0}, {remove: 0}, {remove: 0}}},
		{name: "add then drain", steps: []step{{add: true}, {add: true}, {remove: 2}, {remove: 1}, {remove: 0}, {remove: 0}}},
		{name: "interleaved", steps: []step{{add: true}, {remove: 0}, {add: true}, {remove: 1}, {remove: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := NewDraft()
			for _, s := range tc.steps {
				if s.add {
					draft = draft.AddAnswer()
				} else {
					draft = draft.RemoveAnswer(s.remove)
				}
				if len(draft.Answers) < 1 {
					t.Fatalf("answer list emptied mid-sequence: %+v", draft)
				}
			}
		})
	}
}
