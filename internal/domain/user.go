package domain

// User is authentication collaborator data; the state stores only ever
// read UID to compute the storage partition key.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}
