package models

// Teacher represents an instructor. DepartmentID references Department.
type Teacher struct {
	TeacherSSN     string  `db:"teacher_ssn" json:"TeacherSSN" validate:"required,max=20"`
	TName          *string `db:"tname" json:"TName" validate:"omitempty,max=100"`
	Qualifications *string `db:"qualifications" json:"Qualifications" validate:"omitempty,max=200"`
	Phone          *string `db:"phone" json:"Phone" validate:"omitempty,max=20"`
	Email          *string `db:"email" json:"Email" validate:"omitempty,max=100"`
	HireDate       *string `db:"hire_date" json:"Hire_date" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID   *int    `db:"department_id" json:"DepartmentID"`
}

// TeacherListing adds the department name resolved through a left join.
type TeacherListing struct {
	Teacher
	DepartmentName *string `db:"department_name" json:"DepartmentName"`
}
