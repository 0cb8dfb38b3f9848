package attendance

// TimerRecord is one raw timer-card row as produced by the ingestion
// pipeline. Times stay in the "HH:MM" form they were captured in; the hours
// classifier parses them and skips malformed rows instead of failing the
// whole employee.
type TimerRecord struct {
	WorkDate string `json:"work_date"` // "2006-01-02"
	ClockIn  string `json:"clock_in"`  // "15:04"
	ClockOut string `json:"clock_out"` // "15:04", may be earlier than ClockIn (overnight shift)
}
