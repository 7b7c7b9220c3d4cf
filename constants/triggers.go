package constants

// Newsworthiness thresholds for the content-trigger evaluator.
const (
	// BlowoutMargin is the margin of victory a game must exceed to count as a
	// blowout. A 21-point win fires, a 20-point win does not.
	BlowoutMargin = 20

	// TopRankingMax is the worst ranking that still counts as a top-10 story.
	TopRankingMax = 10
)
