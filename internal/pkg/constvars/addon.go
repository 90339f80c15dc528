package constvars

// Add-on request lifecycle statuses. A request always starts at pending;
// rejected and completed are terminal.
const (
	AddonStatusPending   = "pending"
	AddonStatusApproved  = "approved"
	AddonStatusRejected  = "rejected"
	AddonStatusCompleted = "completed"
)

// Approval actions the reviewer chooses from.
const (
	AddonActionAddToSameSample = "add_to_same_sample"
	AddonActionNeedNewSample   = "need_new_sample"
)

// Audit log action tags, one per accepted lifecycle transition.
const (
	AddonLogActionCreated   = "created"
	AddonLogActionApproved  = "approved"
	AddonLogActionRejected  = "rejected"
	AddonLogActionCompleted = "completed"
)

// Audit log notes.
const (
	AddonLogNoteCreated        = "Add-on request created"
	AddonLogNoteCompleted      = "Add-on test completed"
	AddonLogNoteApprovedFormat = "Approved with action: %s"
	AddonLogNoteRejectedFormat = "Rejected: %s"
)

// Shift buckets for analytics. Hours 07..18 inclusive of the naive local
// creation time count as day shift, everything else as night.
const (
	ShiftDay   = "day"
	ShiftNight = "night"

	ShiftDayStartHour = 7
	ShiftDayEndHour   = 19
)

// Keywords flagging a request reason as preventable, matched
// case-insensitively as substrings.
var PreventableReasonKeywords = []string{"missing", "forgot"}

const (
	AnalyticsDefaultTrendDays = 30
	AnalyticsDateKeyFormat    = "2006-01-02"
)

const CriticalCallSearchLimit = 50

// Search type filters for the critical-call contact lookup.
const (
	SearchTypeAll     = "all"
	SearchTypeWard    = "ward"
	SearchTypeRoom    = "room"
	SearchTypePatient = "patient"
	SearchTypeNurse   = "nurse"
)
