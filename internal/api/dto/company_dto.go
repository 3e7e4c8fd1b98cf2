package dto

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email" binding:"omitempty,email"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Location    string `json:"location"`
	LogoURL     string `json:"logoUrl"`
	Industry    string `json:"industry"`
	CompanySize string `json:"companySize"`
	UserID      *int64 `json:"userId"`
}

// UpdateCompanyRequest carries the mutable company fields. The owning user
// and the location string are set at creation and not updatable here.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Email       string `json:"email" binding:"omitempty,email"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	LogoURL     string `json:"logoUrl"`
	Industry    string `json:"industry"`
	CompanySize string `json:"companySize"`
}
