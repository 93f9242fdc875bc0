package models

// Student represents an enrolled learner. TeacherSSN is the advisor and
// Gender is M or F when set.
type Student struct {
	StudentSSN string  `db:"student_ssn" json:"StudentSSN" validate:"required,max=20"`
	SName      *string `db:"sname" json:"SName" validate:"omitempty,max=100"`
	BOD        *string `db:"bod" json:"BOD" validate:"omitempty,datetime=2006-01-02"`
	Gender     *string `db:"gender" json:"Gender" validate:"omitempty,oneof=M F"`
	TeacherSSN *string `db:"teacher_ssn" json:"TeacherSSN" validate:"omitempty,max=20"`
}

// StudentListing adds the advisor name resolved through a left join.
type StudentListing struct {
	Student
	TeacherName *string `db:"teacher_name" json:"TeacherName"`
}
