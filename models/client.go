package models

// Client is a workshop customer (tenant-scoped). PhoneNumber feeds the wa.me
// deep links, so store it in international format where possible.
type Client struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	FirstName   string `json:"first_name" gorm:"not null"`
	LastName    string `json:"last_name" gorm:"not null"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number" gorm:"not null"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Notes       string `json:"notes"`
	Active      bool   `json:"-"`
}

// DisplayName prefers the company name for business clients.
func (c *Client) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.FirstName + " " + c.LastName
}
