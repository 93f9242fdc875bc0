package models

// Course is taught by one teacher within one department.
type Course struct {
	CourseID     int     `db:"course_id" json:"Course_ID"`
	CName        *string `db:"cname" json:"CName" validate:"omitempty,max=100"`
	CreditHours  *int    `db:"credit_hours" json:"Credit_hours" validate:"omitempty,min=0"`
	DepartmentID *int    `db:"department_id" json:"DepartmentID"`
	TeacherSSN   *string `db:"teacher_ssn" json:"TeacherSSN" validate:"omitempty,max=20"`
}

// CourseListing adds department and teacher names. Either may be nil when
// the reference is unset.
type CourseListing struct {
	Course
	DepartmentName *string `db:"department_name" json:"DepartmentName"`
	TeacherName    *string `db:"teacher_name" json:"TeacherName"`
}
