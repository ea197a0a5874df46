package protocol

// SimulateRequest asks the server for one run of the scenario.
type SimulateRequest struct {
	Mass float64 `json:"mass"` // mass of the bigger box, must be > 0
}

// DiagramResult carries a finished run back to the client.
type DiagramResult struct {
	Mass  float64 `json:"mass"`
	Count int     `json:"count"`
	SVG   string  `json:"svg"`
}

// CountResult is the reply of the count-only HTTP endpoint.
type CountResult struct {
	Mass  float64 `json:"mass"`
	Count int     `json:"count"`
}

type Error struct {
	Message string `json:"message"`
}
