package domain

// LoginCredential is an admin account. Password holds a bcrypt hash once
// written through the account service; seeded records carry plaintext.
type LoginCredential struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c LoginCredential) EntityID() ID { return c.ID }

func (c LoginCredential) WithID(id ID) LoginCredential {
	c.ID = id
	return c
}

// LoginCredentialPatch carries the credential fields to change. nil means keep.
type LoginCredentialPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Apply implements Patch.
func (p LoginCredentialPatch) Apply(c LoginCredential) LoginCredential {
	setIfPresent(&c.Name, p.Name)
	setIfPresent(&c.Email, p.Email)
	setIfPresent(&c.Password, p.Password)
	return c
}
