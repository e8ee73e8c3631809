package model

// Member 成員。Password 只存雜湊，永遠不輸出到回應
type Member struct {
	ID           int     `json:"id" db:"id"`
	Email        string  `json:"email" db:"email"`
	Password     string  `json:"-" db:"password"`
	Name         string  `json:"name" db:"name"`
	CPF          string  `json:"cpf" db:"cpf"`
	Street       *string `json:"street,omitempty" db:"street"`
	Neighborhood *string `json:"neighborhood,omitempty" db:"neighborhood"`
	City         *string `json:"city,omitempty" db:"city"`
	State        *string `json:"state,omitempty" db:"state"`
	ZipCode      *string `json:"zipCode,omitempty" db:"zip_code"`
	DepartmentID int     `json:"departmentId" db:"department_id"`
	RoleID       int     `json:"roleId" db:"role_id"`
}
