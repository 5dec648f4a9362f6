package domain

// User models an administrative account.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// UserRecord is what the service hands to the store on insert and replace.
// The password is already hashed at this point.
type UserRecord struct {
	Username     string
	PasswordHash string
}
