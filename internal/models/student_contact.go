package models

// StudentEmail is one of a student's email addresses.
type StudentEmail struct {
	Email      string `db:"email" json:"Email" validate:"required,max=100"`
	StudentSSN string `db:"student_ssn" json:"StudentSSN" validate:"required,max=20"`
}

// StudentEmailListing adds the student's name.
type StudentEmailListing struct {
	StudentEmail
	StudentName *string `db:"student_name" json:"StudentName"`
}

// StudentPhone is one of a student's phone numbers.
type StudentPhone struct {
	PhoneNum   string `db:"phone_num" json:"PhoneNum" validate:"required,max=20"`
	StudentSSN string `db:"student_ssn" json:"StudentSSN" validate:"required,max=20"`
}

// StudentPhoneListing adds the student's name.
type StudentPhoneListing struct {
	StudentPhone
	StudentName *string `db:"student_name" json:"StudentName"`
}
