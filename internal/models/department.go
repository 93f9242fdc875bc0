package models

// Department is an academic department.
type Department struct {
	DepartmentID int     `db:"department_id" json:"DepartmentID"`
	DName        *string `db:"dname" json:"DName" validate:"omitempty,max=100"`
	Location     *string `db:"location" json:"Location" validate:"omitempty,max=100"`
}
