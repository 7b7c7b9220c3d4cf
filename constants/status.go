package constants

// ItemStatus is the canonical status for one screenshot in a batch.
type ItemStatus string

// Stable values (rendered in batch summaries and the review UI).
const (
	ItemStatusPending        ItemStatus = "PENDING"         // not processed yet
	ItemStatusAnalyzing      ItemStatus = "ANALYZING"       // classify/extract in flight
	ItemStatusAwaitingReview ItemStatus = "AWAITING_REVIEW" // analyzed, not committed
	ItemStatusCommitted      ItemStatus = "COMMITTED"       // routed into stores
	ItemStatusError          ItemStatus = "ERROR"           // terminal failure for this item
)
