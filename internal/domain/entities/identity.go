package entities

// Identity is the minimal user snapshot carried by a session or token. A nil
// Identity means the request is anonymous.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
