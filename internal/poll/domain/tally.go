package domain

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ShortSummary holds the counts derived from a session's ledger.
type ShortSummary struct {
	Yes   int
	No    int
	Total int
}

// FullSummary extends ShortSummary with the voter names grouped by answer.
// Name lists are collated ascending under the root locale, so case does
// not split the ordering ("alice" sorts before "Bob"). The ordering is a
// user-facing contract.
type FullSummary struct {
	Yes      int
	No       int
	Total    int
	YesNames []string
	NoNames  []string
}

// ShortTally counts ballots by answer.
func ShortTally(ballots []Ballot) ShortSummary {
	var s ShortSummary
	for _, b := range ballots {
		switch b.Answer {
		case AnswerYes:
			s.Yes++
		case AnswerNo:
			s.No++
		}
	}
	s.Total = s.Yes + s.No
	return s
}

// FullTally groups voter names by answer and collates each group.
func FullTally(ballots []Ballot) FullSummary {
	var f FullSummary
	for _, b := range ballots {
		switch b.Answer {
		case AnswerYes:
			f.YesNames = append(f.YesNames, b.DisplayName)
		case AnswerNo:
			f.NoNames = append(f.NoNames, b.DisplayName)
		}
	}
	// A collator buffers state between comparisons, so each tally uses its
	// own instead of sharing one across chats.
	c := collate.New(language.Und)
	c.SortStrings(f.YesNames)
	c.SortStrings(f.NoNames)
	f.Yes = len(f.YesNames)
	f.No = len(f.NoNames)
	f.Total = f.Yes + f.No
	return f
}
