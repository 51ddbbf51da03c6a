package models

// Profile is the account holder's contact record. It is persisted
// independently of the ledger.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
