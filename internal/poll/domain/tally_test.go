package domain

import (
	"reflect"
	"testing"
)

func TestShortTallyCounts(t *testing.T) {
	ballots := []Ballot{
		{Answer: AnswerYes, DisplayName: "Ana"},
		{Answer: AnswerNo, DisplayName: "Bob"},
		{Answer: AnswerYes, DisplayName: "Carol"},
	}
	sum := ShortTally(ballots)
	if sum.Yes != 2 || sum.No != 1 || sum.Total != 3 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestShortTallyEmptyLedger(t *testing.T) {
	sum := ShortTally(nil)
	if sum.Yes != 0 || sum.No != 0 || sum.Total != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestFullTallyGroupsByAnswer(t *testing.T) {
	s := NewSession()
	s.Open()
	if err := s.RecordVote(1, AnswerYes, "Ana"); err != nil {
		t.Fatalf("record vote: %v", err)
	}
	if err := s.RecordVote(1, AnswerNo, "Ana"); err != nil {
		t.Fatalf("flip vote: %v", err)
	}

	sum := FullTally(s.Ballots())
	if len(sum.YesNames) != 0 {
		t.Fatalf("expected flipped voter out of the yes list, got %v", sum.YesNames)
	}
	if !reflect.DeepEqual(sum.NoNames, []string{"Ana"}) {
		t.Fatalf("expected flipped voter in the no list, got %v", sum.NoNames)
	}
	if sum.Yes != 0 || sum.No != 1 || sum.Total != 1 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
}

func TestFullTallyCollatesNamesCaseInsensitively(t *testing.T) {
	ballots := []Ballot{
		{Answer: AnswerYes, DisplayName: "Bob"},
		{Answer: AnswerYes, DisplayName: "alice"},
		{Answer: AnswerYes, DisplayName: "Carol"},
	}
	sum := FullTally(ballots)
	want := []string{"alice", "Bob", "Carol"}
	if !reflect.DeepEqual(sum.YesNames, want) {
		t.Fatalf("expected collated order %v, got %v", want, sum.YesNames)
	}
}
