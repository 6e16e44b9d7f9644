package events

func SubjectRecordSaved(recordID string) string   { return "compass.portfolio." + recordID + ".saved" }
func SubjectRecordRemoved(recordID string) string { return "compass.portfolio." + recordID + ".removed" }

func SubjectSessionCreated(sessionID string) string { return "compass.session." + sessionID + ".created" }
