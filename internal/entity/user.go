package entity

// User is a first-seen session record kept in the SQLite store, so returning
// players can be greeted by name.
type User struct {
	SessionID string
	Name      string
}
