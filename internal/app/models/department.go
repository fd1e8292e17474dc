package models

// Department represents an academic department
type Department struct {
	ID          int64  `json:"departmentId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentAssociation links a faculty member to a department
type DepartmentAssociation struct {
	Email        string `json:"email"`
	DepartmentID int64  `json:"departmentId"`
}

// FacultyDepartments groups a faculty member's department memberships
type FacultyDepartments struct {
	Email         string  `json:"email"`
	DepartmentIDs []int64 `json:"departmentIds"`
}

// DepartmentFaculty groups the members associated with a department
type DepartmentFaculty struct {
	DepartmentID int64    `json:"departmentId"`
	Emails       []string `json:"emails"`
}
