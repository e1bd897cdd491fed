package models

// EmployeeRole is the backend's role code for a staff member.
type EmployeeRole string

const (
	RoleCook    EmployeeRole = "COZINHEIRO"
	RoleWaiter  EmployeeRole = "GARCON"
	RoleManager EmployeeRole = "GERENTE"
)

// EmployeeRoleRecord wraps the role as nested in a fetched user.
type EmployeeRoleRecord struct {
	Role EmployeeRole `json:"cargo"`
}

// Employee holds the personal data attached to a user account.
type Employee struct {
	ID   int                `json:"id"`
	Name string             `json:"nome"`
	CPF  string             `json:"cpf"`
	Role EmployeeRoleRecord `json:"cargoFuncionario"`
}

// User represents a staff login account.
type User struct {
	ID       int      `json:"id"`
	Email    string   `json:"email"`
	Employee Employee `json:"funcionario"`
}

// NewEmployee is the employee section of a user-creation request.
type NewEmployee struct {
	Name string       `json:"nome"`
	CPF  string       `json:"cpf"`
	Role EmployeeRole `json:"cargoFuncionario"`
}

// NewUser is the body of a user-creation request. The backend creates users
// through POST /login, the same resource that authenticates them.
type NewUser struct {
	Email    string      `json:"email"`
	Password string      `json:"senha"`
	Employee NewEmployee `json:"funcionario"`
}
