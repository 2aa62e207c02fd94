package core

// TaskStatus is the lifecycle status of a Task.
type TaskStatus string

const (
	TaskRequested  TaskStatus = "requested"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskRejected   TaskStatus = "rejected"
)

// RequestStatus is the lifecycle status of a TaskRequest.
type RequestStatus string

const (
	RequestRequested RequestStatus = "requested"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
)

// EntityKind selects which transition table applies.
type EntityKind string

const (
	KindTask        EntityKind = "task"
	KindTaskRequest EntityKind = "task_request"
)

// The full set of legal transitions, declared once. Statuses absent as keys
// are terminal. Self-transitions are illegal unless listed.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskRequested:  {TaskInProgress, TaskRejected},
	TaskInProgress: {TaskCompleted},
}

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestRequested: {RequestAccepted, RequestRejected},
}

// ValidateTaskTransition checks a Task status change against the transition
// table. On failure the entity must be left unchanged by the caller.
func ValidateTaskTransition(from, to TaskStatus) error {
	for _, allowed := range taskTransitions[from] {
		if to == allowed {
			return nil
		}
	}
	return &ValidationError{Kind: IllegalTransition, From: string(from), To: string(to)}
}

// ValidateRequestTransition checks a TaskRequest status change.
func ValidateRequestTransition(from, to RequestStatus) error {
	for _, allowed := range requestTransitions[from] {
		if to == allowed {
			return nil
		}
	}
	return &ValidationError{Kind: IllegalTransition, From: string(from), To: string(to)}
}

// ValidateTransition is the generic entry point for callers that hold
// statuses as strings.
func ValidateTransition(kind EntityKind, from, to string) error {
	switch kind {
	case KindTask:
		return ValidateTaskTransition(TaskStatus(from), TaskStatus(to))
	case KindTaskRequest:
		return ValidateRequestTransition(RequestStatus(from), RequestStatus(to))
	default:
		return &NotFoundError{Entity: "entity kind " + string(kind)}
	}
}

// IsTerminalTaskStatus reports whether no further Task transition exists.
func IsTerminalTaskStatus(s TaskStatus) bool {
	return len(taskTransitions[s]) == 0
}

// IsTerminalRequestStatus reports whether no further TaskRequest transition exists.
func IsTerminalRequestStatus(s RequestStatus) bool {
	return len(requestTransitions[s]) == 0
}
