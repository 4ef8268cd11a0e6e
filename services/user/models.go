package userservice

type User struct {
	Email            string  `json:"email" db:"email"`
	Name             string  `json:"name" db:"name"`
	PhotoURL         *string `json:"photoURL,omitempty" db:"photo_url"`
	Role             string  `json:"role" db:"role"`
	Status           string  `json:"status" db:"status"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CompanyName      *string `json:"companyName,omitempty" db:"company_name"`
	CompanyLogo      *string `json:"companyLogo,omitempty" db:"company_logo"`
	CompanyDetails   *string `json:"companyDetails,omitempty" db:"company_details"`
	HREmail          *string `json:"hrEmail,omitempty" db:"hr_email"`
	PackageLimit     *int    `json:"packageLimit,omitempty" db:"package_limit"`
	CurrentEmployees *int    `json:"currentEmployees,omitempty" db:"current_employees"`
	Subscription     *string `json:"subscription,omitempty" db:"subscription"`
}

type RegisterUserReq struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Role           string `json:"role" validate:"required,oneof=hr employee"`
	DateOfBirth    string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PhotoURL       string `json:"photoURL,omitempty"`
	CompanyName    string `json:"companyName,omitempty" validate:"required_if=Role hr"`
	CompanyLogo    string `json:"companyLogo,omitempty" validate:"omitempty,url"`
	CompanyDetails string `json:"companyDetails,omitempty"`
}

type SessionLoginReq struct {
	IDToken string `json:"idToken" validate:"required"`
}

type UpdateUserReq struct {
	Name           string `json:"name,omitempty"`
	PhotoURL       string `json:"photoURL,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CompanyName    string `json:"companyName,omitempty"`
	CompanyLogo    string `json:"companyLogo,omitempty"`
	CompanyDetails string `json:"companyDetails,omitempty"`
}

type RemoveEmployeeReq struct {
	HREmail string `json:"hrEmail" validate:"required,email"`
}

type TeamMember struct {
	Email       string  `json:"email" db:"email"`
	Name        string  `json:"name" db:"name"`
	PhotoURL    *string `json:"photoURL,omitempty" db:"photo_url"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CompanyName *string `json:"companyName,omitempty" db:"company_name"`
}
