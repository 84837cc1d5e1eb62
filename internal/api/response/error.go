package response

// Error is the body carried in the extras of a failed response.
type Error struct {
	Message string `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}
