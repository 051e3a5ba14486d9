package resource

// Alarm is a fault-management alarm as returned by the API. It exists so
// typed client objects can flow through the list printers without being
// converted to maps first.
type Alarm struct {
	AlarmID          string
	AlarmState       string
	EntityInstanceID string
	Severity         string
	ReasonText       string
	Timestamp        string
}

// Attr implements Resource over the alarm's displayable fields.
func (a Alarm) Attr(name string) (string, bool) {
	switch name {
	case "alarm_id":
		return a.AlarmID, true
	case "alarm_state":
		return a.AlarmState, true
	case "entity_instance_id":
		return a.EntityInstanceID, true
	case "severity":
		return a.Severity, true
	case "reason_text":
		return a.ReasonText, true
	case "timestamp":
		return a.Timestamp, true
	default:
		return "", false
	}
}

// EventLog is a historical alarm/log event. Same shape as Alarm plus the
// event state and log type discriminator.
type EventLog struct {
	EventLogID       string
	State            string
	EntityInstanceID string
	Severity         string
	ReasonText       string
	Timestamp        string
}

// Attr implements Resource over the event's displayable fields.
func (e EventLog) Attr(name string) (string, bool) {
	switch name {
	case "event_log_id":
		return e.EventLogID, true
	case "state":
		return e.State, true
	case "entity_instance_id":
		return e.EntityInstanceID, true
	case "severity":
		return e.Severity, true
	case "reason_text":
		return e.ReasonText, true
	case "timestamp":
		return e.Timestamp, true
	default:
		return "", false
	}
}
