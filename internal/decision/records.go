package decision

type RecordType string

const (
	RecordPosition  RecordType = "POSITION"
	RecordCandidate RecordType = "CANDIDATE"
)

// Actions the orchestrator can propose. ActionExclude marks a position the
// vitals stage could not score; it is advisory bookkeeping, not a trade.
const (
	ActionMaintain = "MAINTAIN"
	ActionReview   = "REVIEW"
	ActionReduce   = "REDUCE"
	ActionAllocate = "ALLOCATE"
	ActionExclude  = "EXCLUDE"
)

// Record is the atomic unit flowing orchestrator -> guardrails -> planner.
// Reasons are append-only and ordered; the first reason is the primary
// cause. BlockingGuard is populated by the guardrail layer only.
type Record struct {
	Type          RecordType `json:"type"`
	Target        string     `json:"target"`
	Sector        string     `json:"sector,omitempty"`
	Action        string     `json:"action"`
	Score         float64    `json:"score"`
	Capital       float64    `json:"capital_allocated,omitempty"`
	Reasons       []string   `json:"reasons"`
	Blocked       bool       `json:"blocked"`
	BlockingGuard string     `json:"blocking_guard,omitempty"`
}

type PostureKind string

const (
	PostureRiskOff     PostureKind = "RISK_OFF"
	PostureDefensive   PostureKind = "DEFENSIVE"
	PostureNeutral     PostureKind = "NEUTRAL"
	PostureOpportunity PostureKind = "OPPORTUNITY"
	PostureAggressive  PostureKind = "AGGRESSIVE"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// Posture is the portfolio-level risk stance for one run.
type Posture struct {
	MarketPosture PostureKind `json:"market_posture"`
	RiskLevel     RiskLevel   `json:"risk_level"`
	Confidence    float64     `json:"confidence"`
	Reasons       []string    `json:"reasons"`
}
