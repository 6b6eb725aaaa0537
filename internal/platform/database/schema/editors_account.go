package schema

// EditorsAccountTable represents the 'editors.account' table
type EditorsAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// EditorsAccount is the schema definition for editors.account
var EditorsAccount = EditorsAccountTable{
	Table:        "editors.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	DisplayName:  "display_name",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
