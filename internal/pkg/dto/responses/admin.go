package responses

type SystemInfo struct {
	UptimeSeconds float64 `json:"uptime"`
	Env           string  `json:"env"`
	PID           int     `json:"pid"`
}

type Stats struct {
	Users      int64 `json:"users"`
	Clinics    int64 `json:"clinics"`
	Hospitals  int64 `json:"hospitals"`
	Isolations int64 `json:"isolations"`
}
