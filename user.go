package papertrader

// User is a session-scoped trader: a name, one cash account and one
// portfolio. A user lives for the duration of a session, nothing persists
// across runs.
type User struct {
	name      string
	account   *Account
	portfolio *Portfolio
}

// NewUser creates a user with an empty portfolio and the given opening
// cash balance.
func NewUser(name string, opening Money) (*User, error) {
	account, err := NewAccount(opening)
	if err != nil {
		return nil, err
	}
	return &User{
		name:      name,
		account:   account,
		portfolio: NewPortfolio(),
	}, nil
}

// Name returns the user's identifier.
func (u *User) Name() string { return u.name }

// Account returns the user's cash account.
func (u *User) Account() *Account { return u.account }

// Portfolio returns the user's share holdings.
func (u *User) Portfolio() *Portfolio { return u.portfolio }
