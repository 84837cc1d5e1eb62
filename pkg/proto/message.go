package proto

// GameMessage is the JSON snapshot of a game sent to HTTP clients. Board rows
// are listed top to bottom and each cell is "", "white" or "black".
type GameMessage struct {
	ID         string     `json:"id"`
	Size       int        `json:"size"`
	Board      [][]string `json:"board"`
	State      string     `json:"state"`
	Human      string     `json:"human"`
	Next       string     `json:"next,omitempty"`
	Winner     string     `json:"winner,omitempty"`
	LastColumn *int       `json:"last_column,omitempty"`
}
