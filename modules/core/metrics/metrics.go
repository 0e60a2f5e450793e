package metrics

// Metric labels.
const (
	// 02-client labels

	LabelClientType = "client_type"
	LabelClientID   = "client_id"
	LabelMsgType    = "msg_type"
	LabelOutcome    = "outcome"
)

// Validation outcomes reported under LabelOutcome.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Message types reported under LabelMsgType and used as the last key segment
// of the validation counters.
const (
	MsgTypeCreate  = "created"
	MsgTypeUpdate  = "updated"
	MsgTypeUpgrade = "upgraded"
)
